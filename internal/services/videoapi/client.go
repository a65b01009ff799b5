package videoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultHTTPTimeout = 120 * time.Second
)

// Client talks to the video generation API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the default API base (useful for tests/mocks).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		base = strings.TrimSpace(base)
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithTimeout overrides the default HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient constructs a video API client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

// StatusError reports a non-success HTTP response from the service, with
// the error message extracted from the API error envelope when present.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("videoapi: http %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an HTTP 404 from the service.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

// ReferenceImage is the encoded input image uploaded with a create request.
type ReferenceImage struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateRequest describes a video generation job submission.
type CreateRequest struct {
	Model          string
	Prompt         string
	Size           string
	Seconds        int
	InputReference *ReferenceImage
}

// Create submits a generation job and returns the job record as created.
func (c *Client) Create(ctx context.Context, req CreateRequest) (Job, error) {
	var empty Job
	if strings.TrimSpace(c.apiKey) == "" {
		return empty, errors.New("videoapi create: api key required")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return empty, errors.New("videoapi create: prompt required")
	}
	if strings.TrimSpace(req.Model) == "" {
		return empty, errors.New("videoapi create: model required")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	fields := map[string]string{
		"model":   req.Model,
		"prompt":  req.Prompt,
		"size":    req.Size,
		"seconds": strconv.Itoa(req.Seconds),
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return empty, fmt.Errorf("videoapi create: write field %s: %w", name, err)
		}
	}
	if ref := req.InputReference; ref != nil {
		part, err := writer.CreateFormFile("input_reference", ref.Filename)
		if err != nil {
			return empty, fmt.Errorf("videoapi create: attach reference: %w", err)
		}
		if _, err := part.Write(ref.Data); err != nil {
			return empty, fmt.Errorf("videoapi create: write reference: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return empty, fmt.Errorf("videoapi create: finalize body: %w", err)
	}

	endpoint, err := url.JoinPath(c.baseURL, "videos")
	if err != nil {
		return empty, fmt.Errorf("videoapi create: build url: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return empty, fmt.Errorf("videoapi create: request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	var job Job
	if err := c.doJSON(httpReq, &job, "videoapi create"); err != nil {
		return empty, err
	}
	if strings.TrimSpace(job.ID) == "" {
		return empty, errors.New("videoapi create: response missing job id")
	}
	return job, nil
}

// Retrieve fetches the current job record.
func (c *Client) Retrieve(ctx context.Context, id string) (Job, error) {
	var empty Job
	id = strings.TrimSpace(id)
	if id == "" {
		return empty, errors.New("videoapi retrieve: job id required")
	}
	if strings.TrimSpace(c.apiKey) == "" {
		return empty, errors.New("videoapi retrieve: api key required")
	}
	endpoint, err := url.JoinPath(c.baseURL, "videos", id)
	if err != nil {
		return empty, fmt.Errorf("videoapi retrieve: build url: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return empty, fmt.Errorf("videoapi retrieve: request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	var job Job
	if err := c.doJSON(httpReq, &job, "videoapi retrieve"); err != nil {
		return empty, err
	}
	return job, nil
}

// DownloadContent streams one artifact variant of a completed job. The
// caller owns the returned reader and must close it. A missing variant
// surfaces as a StatusError with code 404, detectable via IsNotFound.
func (c *Client) DownloadContent(ctx context.Context, id, variant string) (io.ReadCloser, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("videoapi download: job id required")
	}
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, errors.New("videoapi download: api key required")
	}
	endpoint, err := url.JoinPath(c.baseURL, "videos", id, "content")
	if err != nil {
		return nil, fmt.Errorf("videoapi download: build url: %w", err)
	}
	if variant = strings.TrimSpace(variant); variant != "" {
		endpoint += "?variant=" + url.QueryEscape(variant)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("videoapi download: request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("videoapi download: request failed: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: extractAPIError(body)}
	}
	return resp.Body, nil
}

func (c *Client) doJSON(req *http.Request, target any, op string) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", op, err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: resp.StatusCode, Message: extractAPIError(body)}
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// extractAPIError pulls the message out of the service error envelope,
// falling back to the raw body.
func extractAPIError(body []byte) string {
	var envelope struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		if msg := strings.TrimSpace(envelope.Error.Message); msg != "" {
			return msg
		}
	}
	return strings.TrimSpace(string(body))
}

package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"spritegen/internal/services/videoapi"
)

const defaultPollInterval = 10 * time.Second

// JobService is the remote boundary the driver needs: create a job,
// retrieve its status, and stream artifact content.
type JobService interface {
	Create(ctx context.Context, req videoapi.CreateRequest) (videoapi.Job, error)
	Retrieve(ctx context.Context, id string) (videoapi.Job, error)
	DownloadContent(ctx context.Context, id, variant string) (io.ReadCloser, error)
}

// Driver runs generation jobs against a JobService.
type Driver struct {
	service JobService
	logger  *slog.Logger
	sleeper func(time.Duration)
}

// Option customizes the driver.
type Option func(*Driver)

// WithSleeper overrides how poll sleeps are performed (useful for tests).
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(d *Driver) {
		d.sleeper = sleeper
	}
}

// New constructs a driver. A nil logger discards output.
func New(service JobService, logger *slog.Logger, opts ...Option) *Driver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	driver := &Driver{service: service, logger: logger}
	for _, opt := range opts {
		opt(driver)
	}
	return driver
}

func (d *Driver) withLogger(logger *slog.Logger) *Driver {
	clone := *d
	clone.logger = logger
	return &clone
}

// SubmitRequest describes one job submission. Prompt carries the resolved
// prompt text, not the raw user input.
type SubmitRequest struct {
	Prompt    string
	ImagePath string
	Model     string
	Size      string
	Seconds   int
}

// Submit prepares the reference image and creates the remote job. The only
// local validation is that the reference image exists and decodes.
func (d *Driver) Submit(ctx context.Context, req SubmitRequest) (videoapi.Job, error) {
	ref, err := PrepareReference(req.ImagePath, req.Size)
	if err != nil {
		return videoapi.Job{}, err
	}

	d.logger.Info("submitting generation job",
		"model", req.Model,
		"size", req.Size,
		"seconds", req.Seconds,
		"image", req.ImagePath,
		"prompt_chars", len(req.Prompt),
	)
	job, err := d.service.Create(ctx, videoapi.CreateRequest{
		Model:          req.Model,
		Prompt:         req.Prompt,
		Size:           req.Size,
		Seconds:        req.Seconds,
		InputReference: ref,
	})
	if err != nil {
		return videoapi.Job{}, fmt.Errorf("submit job: %w", err)
	}
	d.logger.Info("job created", "job_id", job.ID, "status", job.Status)
	return job, nil
}

// TimeoutError reports that a job stayed non-terminal past the poll budget.
type TimeoutError struct {
	JobID   string
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for job %s", e.Elapsed, e.JobID)
}

// FailureError reports a job that reached the failed status, carrying the
// service-supplied message.
type FailureError struct {
	JobID   string
	Message string
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("job %s failed: %s", e.JobID, e.Message)
}

// Wait polls the job at a flat interval until it reaches a terminal status
// or cumulative elapsed time exceeds timeout. Transport errors propagate
// immediately; there is no retry or backoff. The returned job is the last
// record observed.
func (d *Driver) Wait(ctx context.Context, jobID string, interval, timeout time.Duration) (videoapi.Job, error) {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	var elapsed time.Duration
	for {
		job, err := d.service.Retrieve(ctx, jobID)
		if err != nil {
			return videoapi.Job{}, fmt.Errorf("poll job %s: %w", jobID, err)
		}
		d.logger.Info("job status",
			"job_id", jobID,
			"status", job.Status,
			"progress", progressString(job.Progress),
			"elapsed", elapsed.String(),
		)

		switch job.Status {
		case videoapi.StatusCompleted:
			return job, nil
		case videoapi.StatusFailed:
			return job, &FailureError{JobID: jobID, Message: job.FailureMessage()}
		}

		if elapsed >= timeout {
			return job, &TimeoutError{JobID: jobID, Elapsed: elapsed}
		}
		if err := d.sleep(ctx, interval); err != nil {
			return job, err
		}
		elapsed += interval
	}
}

func (d *Driver) sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	if d.sleeper != nil {
		d.sleeper(delay)
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// progressString renders an optional progress percentage; absence is
// "unknown", not an error.
func progressString(progress *int) string {
	if progress == nil {
		return "?"
	}
	return fmt.Sprintf("%d%%", *progress)
}

// IsTimeout reports whether err is a poll timeout.
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

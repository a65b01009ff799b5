package videoapi

import "strings"

// Status is the service-reported lifecycle state of a generation job.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether the job has finished, successfully or not.
// Unknown status strings are treated as non-terminal so a new vocabulary
// value on the service side degrades to a poll timeout rather than a wrong
// terminal classification.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// JobError carries the service-supplied failure detail for a failed job.
type JobError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Job is one remote video generation request/response lifecycle as the
// service reports it. Progress may be absent from any given status
// response; a nil pointer means unknown, not zero.
type Job struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	Progress  *int      `json:"progress,omitempty"`
	Model     string    `json:"model,omitempty"`
	Size      string    `json:"size,omitempty"`
	Seconds   string    `json:"seconds,omitempty"`
	CreatedAt int64     `json:"created_at,omitempty"`
	Error     *JobError `json:"error,omitempty"`
}

// FailureMessage returns the service error message for a failed job, or a
// generic fallback when the service omitted one.
func (j Job) FailureMessage() string {
	if j.Error != nil {
		if msg := strings.TrimSpace(j.Error.Message); msg != "" {
			return msg
		}
	}
	return "no error detail provided"
}

// Artifact variants a completed job can expose.
const (
	VariantVideo       = "video"
	VariantThumbnail   = "thumbnail"
	VariantSpritesheet = "spritesheet"
)

// Variants lists the known artifact variants in download order.
func Variants() []string {
	return []string{VariantSpritesheet, VariantThumbnail, VariantVideo}
}

// VariantExt returns the file extension for a variant. The video is MP4;
// thumbnail and sprite sheet are both PNG.
func VariantExt(variant string) string {
	if variant == VariantVideo {
		return "mp4"
	}
	return "png"
}

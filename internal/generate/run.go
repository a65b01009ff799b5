package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"spritegen/internal/prompts"
	"spritegen/internal/services/videoapi"
)

// lockFileName guards an output directory against interleaved writes from
// concurrent runs.
const lockFileName = ".spritegen.lock"

// RunRequest describes a full generation run: prompt input as the user gave
// it (preset name, .txt path, or literal text) plus submission and polling
// parameters.
type RunRequest struct {
	PromptInput  string
	ImagePath    string
	Model        string
	Size         string
	Seconds      int
	OutputDir    string
	PollInterval time.Duration
	Timeout      time.Duration
}

// RunResult reports the finished job and what landed on disk.
type RunResult struct {
	Job       videoapi.Job
	Label     string
	Downloads DownloadResult
}

// Run executes the whole lifecycle: resolve the prompt, submit, wait for a
// terminal status, then download the standard variants into the output
// directory. The directory is flock-guarded for the duration of the run.
func (d *Driver) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	var empty RunResult

	text, source, err := prompts.Resolve(req.PromptInput)
	if err != nil {
		return empty, err
	}
	label := prompts.Label(req.PromptInput)

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return empty, fmt.Errorf("create output directory %q: %w", req.OutputDir, err)
	}
	lock := flock.New(filepath.Join(req.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return empty, fmt.Errorf("lock output directory: %w", err)
	}
	if !locked {
		return empty, fmt.Errorf("another run is writing to %s", req.OutputDir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	runner := d.withLogger(d.logger.With("run_id", uuid.NewString()))
	runner.logger.Info("prompt resolved", "source", source, "label", label)

	job, err := runner.Submit(ctx, SubmitRequest{
		Prompt:    text,
		ImagePath: req.ImagePath,
		Model:     req.Model,
		Size:      req.Size,
		Seconds:   req.Seconds,
	})
	if err != nil {
		return empty, err
	}

	job, err = runner.Wait(ctx, job.ID, req.PollInterval, req.Timeout)
	if err != nil {
		return RunResult{Job: job, Label: label}, err
	}

	downloads := runner.DownloadVariants(ctx, job.ID, VariantPaths(req.OutputDir, label, job.ID))
	return RunResult{Job: job, Label: label, Downloads: downloads}, nil
}

// VariantPaths maps the standard variants to their output file names:
// <label>_<jobID>_spritesheet.png, <label>_<jobID>_thumbnail.png, and
// <label>_<jobID>.mp4.
func VariantPaths(outputDir, label, jobID string) map[string]string {
	base := filepath.Join(outputDir, label+"_"+jobID)
	return map[string]string{
		videoapi.VariantSpritesheet: base + "_spritesheet.png",
		videoapi.VariantThumbnail:   base + "_thumbnail.png",
		videoapi.VariantVideo:       base + "." + videoapi.VariantExt(videoapi.VariantVideo),
	}
}

package generate

import (
	"context"
	"sort"

	"spritegen/internal/fileutil"
	"spritegen/internal/services/videoapi"
)

// DownloadResult records the outcome of a multi-variant download. Written
// holds only the paths actually written; Failed carries per-variant errors.
type DownloadResult struct {
	Written map[string]string
	Failed  map[string]error
}

// DownloadVariants fetches each variant independently and writes it
// verbatim to its target path, creating parent directories as needed. A 404
// means the variant was not produced for this job and is skipped quietly;
// any other failure is logged at warn. Neither aborts the remaining
// variants.
func (d *Driver) DownloadVariants(ctx context.Context, jobID string, variants map[string]string) DownloadResult {
	result := DownloadResult{
		Written: make(map[string]string, len(variants)),
		Failed:  make(map[string]error),
	}

	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, variant := range names {
		path := variants[variant]
		rc, err := d.service.DownloadContent(ctx, jobID, variant)
		if err != nil {
			result.Failed[variant] = err
			if videoapi.IsNotFound(err) {
				d.logger.Debug("variant not produced", "job_id", jobID, "variant", variant)
			} else {
				d.logger.Warn("variant download failed", "job_id", jobID, "variant", variant, "error", err)
			}
			continue
		}

		written, err := fileutil.WriteStream(path, rc)
		rc.Close()
		if err != nil {
			result.Failed[variant] = err
			d.logger.Warn("variant write failed", "job_id", jobID, "variant", variant, "path", path, "error", err)
			continue
		}
		result.Written[variant] = path
		d.logger.Info("variant saved", "job_id", jobID, "variant", variant, "path", path, "bytes", written)
	}
	return result
}

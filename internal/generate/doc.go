// Package generate drives the video generation job lifecycle: prepare the
// reference image, submit the job, poll until a terminal status, and fetch
// the rendered artifacts. Each variant downloads independently; one missing
// artifact never aborts the others.
package generate

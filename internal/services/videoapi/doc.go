// Package videoapi wraps the remote video generation service: job creation
// from a prompt plus reference image, status retrieval, and download of the
// rendered artifacts (video, thumbnail, sprite sheet).
package videoapi

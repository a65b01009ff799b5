// Command spritegen generates pixel-art animation videos from a reference
// image via the video generation API and composes downloaded frames into
// sprite sheets.
package main

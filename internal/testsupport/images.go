// Package testsupport provides shared fixtures for image-based tests.
package testsupport

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// WritePNG writes a solid-color PNG of the given size to path, creating
// parent directories as needed.
func WritePNG(t testing.TB, path string, width, height int, fill color.NRGBA) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
	writePNG(t, path, img)
}

// WriteFrames populates dir/<name> with count solid-color frames named
// frame_000.png, frame_001.png, ... and returns the animation directory.
func WriteFrames(t testing.TB, dir, name string, count, size int, fill color.NRGBA) string {
	t.Helper()

	animDir := filepath.Join(dir, name)
	for i := 0; i < count; i++ {
		WritePNG(t, filepath.Join(animDir, fmt.Sprintf("frame_%03d.png", i)), size, size, fill)
	}
	if count == 0 {
		if err := os.MkdirAll(animDir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", animDir, err)
		}
	}
	return animDir
}

func writePNG(t testing.TB, path string, img image.Image) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

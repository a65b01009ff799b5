package imaging

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestResizeExactDimensions(t *testing.T) {
	cases := []struct {
		srcW, srcH int
		dstW, dstH int
	}{
		{32, 32, 1280, 720},
		{100, 37, 720, 1280},
		{1, 1, 64, 64},
		{640, 480, 13, 7},
	}
	for _, tc := range cases {
		src := solidImage(tc.srcW, tc.srcH, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		dst, err := ResizeExact(src, tc.dstW, tc.dstH)
		if err != nil {
			t.Fatalf("ResizeExact(%dx%d -> %dx%d): %v", tc.srcW, tc.srcH, tc.dstW, tc.dstH, err)
		}
		if dst.Bounds().Dx() != tc.dstW || dst.Bounds().Dy() != tc.dstH {
			t.Fatalf("expected %dx%d, got %dx%d", tc.dstW, tc.dstH, dst.Bounds().Dx(), dst.Bounds().Dy())
		}
	}
}

func TestResizeExactRejectsInvalidTarget(t *testing.T) {
	src := solidImage(4, 4, color.NRGBA{A: 255})
	if _, err := ResizeExact(src, 0, 10); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := ResizeExact(src, 10, -1); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestResizeExactKeepsHardEdges(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	dst, err := ResizeExact(src, 8, 4)
	if err != nil {
		t.Fatalf("ResizeExact: %v", err)
	}
	// Nearest-neighbor must not blend: every pixel is one of the two inputs.
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			got := dst.NRGBAAt(x, y)
			if got.R != 255 && got.B != 255 {
				t.Fatalf("blended pixel at (%d,%d): %+v", x, y, got)
			}
			if got.R > 0 && got.B > 0 {
				t.Fatalf("blended pixel at (%d,%d): %+v", x, y, got)
			}
		}
	}
}

func TestFlattenAlphaCompositesOntoBackground(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	// Remaining pixels fully transparent.

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	flat := FlattenAlpha(src, white)

	if got := flat.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Fatalf("opaque pixel altered: %+v", got)
	}
	if got := flat.NRGBAAt(1, 1); got != white {
		t.Fatalf("transparent pixel not flattened to background: %+v", got)
	}
}

func TestLetterboxGeometry(t *testing.T) {
	bg := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	content := color.NRGBA{R: 200, G: 10, B: 10, A: 255}

	// Wide source: long edge spans the full width, height is padded.
	dst, err := Letterbox(solidImage(100, 50, content), 128, bg)
	if err != nil {
		t.Fatalf("Letterbox: %v", err)
	}
	if dst.Bounds().Dx() != 128 || dst.Bounds().Dy() != 128 {
		t.Fatalf("expected 128x128, got %dx%d", dst.Bounds().Dx(), dst.Bounds().Dy())
	}
	// Scaled content is 128x64 centered at y offset 32.
	if got := dst.NRGBAAt(0, 0); got != bg {
		t.Fatalf("expected top padding at (0,0), got %+v", got)
	}
	if got := dst.NRGBAAt(0, 31); got != bg {
		t.Fatalf("expected padding at (0,31), got %+v", got)
	}
	if got := dst.NRGBAAt(64, 64); got != content {
		t.Fatalf("expected content at center, got %+v", got)
	}
	if got := dst.NRGBAAt(0, 64); got != content {
		t.Fatalf("expected content to touch left edge, got %+v", got)
	}
	if got := dst.NRGBAAt(127, 64); got != content {
		t.Fatalf("expected content to touch right edge, got %+v", got)
	}
	if got := dst.NRGBAAt(0, 127); got != bg {
		t.Fatalf("expected bottom padding at (0,127), got %+v", got)
	}
}

func TestLetterboxTallSource(t *testing.T) {
	bg := color.NRGBA{G: 255, A: 255}
	content := color.NRGBA{B: 255, A: 255}

	dst, err := Letterbox(solidImage(25, 100, content), 64, bg)
	if err != nil {
		t.Fatalf("Letterbox: %v", err)
	}
	// Scaled content is 16x64 centered at x offset 24.
	if got := dst.NRGBAAt(0, 32); got != bg {
		t.Fatalf("expected left padding, got %+v", got)
	}
	if got := dst.NRGBAAt(32, 0); got != content {
		t.Fatalf("expected content to touch top edge, got %+v", got)
	}
	if got := dst.NRGBAAt(32, 63); got != content {
		t.Fatalf("expected content to touch bottom edge, got %+v", got)
	}
	if got := dst.NRGBAAt(63, 32); got != bg {
		t.Fatalf("expected right padding, got %+v", got)
	}
}

func TestLetterboxUsesAlphaAsMask(t *testing.T) {
	bg := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	// Fully transparent square source scales to cover the whole canvas; the
	// background must remain visible through it.
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))

	dst, err := Letterbox(src, 32, bg)
	if err != nil {
		t.Fatalf("Letterbox: %v", err)
	}
	if got := dst.NRGBAAt(16, 16); got != bg {
		t.Fatalf("expected background through transparent content, got %+v", got)
	}
}

func TestParseHexColor(t *testing.T) {
	got, err := ParseHexColor("#FFCC00")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	want := color.NRGBA{R: 0xFF, G: 0xCC, B: 0x00, A: 0xFF}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	if _, err := ParseHexColor("white"); err == nil {
		t.Fatal("expected error for non-hex input")
	}
	if _, err := ParseHexColor("#FFF"); err == nil {
		t.Fatal("expected error for short form")
	}
}

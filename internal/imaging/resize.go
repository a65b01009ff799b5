package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ResizeExact resamples src to exactly width x height using nearest-neighbor
// interpolation. Pixel art keeps its hard edges; aspect ratio is not
// preserved.
func ResizeExact(src image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("resize: invalid target %dx%d", width, height)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// ScaleSmooth resamples src to exactly width x height using a Catmull-Rom
// kernel. Used for sprite sheet cells where visual smoothness matters more
// than edge preservation.
func ScaleSmooth(src image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("resize: invalid target %dx%d", width, height)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// FlattenAlpha composites src over an opaque canvas filled with bg. The
// result carries no transparency.
func FlattenAlpha(src image.Image, bg color.Color) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)
	return dst
}

// Letterbox scales src to fit within a side x side square while preserving
// aspect ratio, then centers it on a canvas filled with bg. The scaled
// content's long edge spans the full side; padding on the short axis is
// split evenly, with any odd remainder landing on the trailing edge. Source
// alpha acts as the paste mask, so transparent regions leave bg visible.
func Letterbox(src image.Image, side int, bg color.Color) (*image.NRGBA, error) {
	if side <= 0 {
		return nil, fmt.Errorf("letterbox: invalid target side %d", side)
	}
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil, errors.New("letterbox: empty source image")
	}

	var scaledW, scaledH int
	if srcW >= srcH {
		scaledW = side
		scaledH = (srcH*side + srcW/2) / srcW
	} else {
		scaledH = side
		scaledW = (srcW*side + srcH/2) / srcH
	}
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, scaledW, scaledH))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, bounds, xdraw.Src, nil)

	dst := image.NewNRGBA(image.Rect(0, 0, side, side))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	offset := image.Pt((side-scaledW)/2, (side-scaledH)/2)
	target := image.Rectangle{Min: offset, Max: offset.Add(image.Pt(scaledW, scaledH))}
	draw.Draw(dst, target, scaled, image.Point{}, draw.Over)
	return dst, nil
}

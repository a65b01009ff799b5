package generate

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"spritegen/internal/imaging"
	"spritegen/internal/services/videoapi"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// ParseSize splits a "WxH" video size string into its dimensions.
func ParseSize(size string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(size), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("parse size %q: expected WxH", size)
	}
	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse size %q: %w", size, err)
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse size %q: %w", size, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("parse size %q: dimensions must be positive", size)
	}
	return width, height, nil
}

// PrepareReference loads the reference image and resamples it to exactly
// the requested video resolution. Nearest-neighbor keeps pixel-art edges
// crisp; any alpha is flattened onto white since the upload carries no
// transparency.
func PrepareReference(path, size string) (*videoapi.ReferenceImage, error) {
	width, height, err := ParseSize(size)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reference image not found: %s", path)
		}
		return nil, fmt.Errorf("inspect reference image: %w", err)
	}

	img, err := imaging.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	resized, err := imaging.ResizeExact(img, width, height)
	if err != nil {
		return nil, err
	}
	flattened := imaging.FlattenAlpha(resized, white)

	data, err := imaging.EncodePNG(flattened)
	if err != nil {
		return nil, err
	}
	return &videoapi.ReferenceImage{
		Filename:    "image.png",
		ContentType: "image/png",
		Data:        data,
	}, nil
}

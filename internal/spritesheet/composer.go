package spritesheet

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"spritegen/internal/fileutil"
	"spritegen/internal/imaging"
)

// ErrNothingToCompose is returned when no animation directories or frames
// exist; callers should report "nothing to do" rather than write an empty
// sheet.
var ErrNothingToCompose = errors.New("spritesheet: no frames to compose")

// FrameSet is one named animation's ordered frame files.
type FrameSet struct {
	Name   string
	Frames []string
}

// Options controls sheet composition.
type Options struct {
	// CellSize is the uniform square cell edge in pixels.
	CellSize int
	// Background fills the canvas and flattens frame transparency.
	Background color.NRGBA
	// LetterboxNames selects animations whose frames are fitted with
	// aspect-preserving padding instead of being stretched to the cell.
	LetterboxNames map[string]struct{}
}

// LoadSets reads the animation directories under dir. Each subdirectory is
// one frame set; its frame_*.png files are ordered lexicographically. The
// returned sets are sorted by name, which fixes row assignment.
func LoadSets(dir string) ([]FrameSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read frames directory %s: %w", dir, err)
	}

	var sets []FrameSet
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		frames, err := filepath.Glob(filepath.Join(dir, entry.Name(), "frame_*.png"))
		if err != nil {
			return nil, fmt.Errorf("scan frames for %s: %w", entry.Name(), err)
		}
		sort.Strings(frames)
		sets = append(sets, FrameSet{Name: entry.Name(), Frames: frames})
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Name < sets[j].Name })
	return sets, nil
}

// Compose builds the sprite sheet for the given frame sets. Row order
// follows the (already sorted) set order; column index is frame position.
// Rows with fewer frames than the widest set leave trailing cells as plain
// background, which is intentional.
func Compose(sets []FrameSet, opts Options) (*image.NRGBA, error) {
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("spritesheet: invalid cell size %d", opts.CellSize)
	}

	maxFrames := 0
	for _, set := range sets {
		if len(set.Frames) > maxFrames {
			maxFrames = len(set.Frames)
		}
	}
	if len(sets) == 0 || maxFrames == 0 {
		return nil, ErrNothingToCompose
	}

	cell := opts.CellSize
	sheet := image.NewNRGBA(image.Rect(0, 0, maxFrames*cell, len(sets)*cell))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	for row, set := range sets {
		_, letterbox := opts.LetterboxNames[set.Name]
		for col, framePath := range set.Frames {
			processed, err := renderCell(framePath, cell, opts.Background, letterbox)
			if err != nil {
				return nil, fmt.Errorf("frame %s: %w", framePath, err)
			}
			target := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
			draw.Draw(sheet, target, processed, image.Point{}, draw.Src)
		}
	}
	return sheet, nil
}

// renderCell loads one frame and fits it to the cell: letterboxed for named
// animations, stretched with the smooth filter otherwise. Frames carrying
// alpha are flattened onto the background before placement.
func renderCell(path string, cell int, bg color.NRGBA, letterbox bool) (*image.NRGBA, error) {
	frame, err := imaging.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	if letterbox {
		fitted, err := imaging.Letterbox(frame, cell, bg)
		if err != nil {
			return nil, err
		}
		return imaging.FlattenAlpha(fitted, bg), nil
	}
	scaled, err := imaging.ScaleSmooth(frame, cell, cell)
	if err != nil {
		return nil, err
	}
	return imaging.FlattenAlpha(scaled, bg), nil
}

// WriteSheet encodes the sheet as PNG at path, creating parent directories
// as needed.
func WriteSheet(sheet image.Image, path string) error {
	if err := fileutil.EnsureParent(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sheet %s: %w", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, sheet); err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}
	return file.Close()
}

// LetterboxSet parses a comma-or-repeat flag list into the set Compose
// expects. Names are lowercased and trimmed.
func LetterboxSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" {
				set[part] = struct{}{}
			}
		}
	}
	return set
}

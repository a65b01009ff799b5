package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"spritegen/internal/imaging"
	"spritegen/internal/spritesheet"
)

func newComposeCommand(ctx *commandContext) *cobra.Command {
	var framesFlag string
	var sheetFlag string
	var cellFlag int
	var backgroundFlag string
	var letterboxFlag []string

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose extracted animation frames into a sprite sheet",
		Long: "Compose the frame_*.png files under the frames directory into a single " +
			"sprite sheet. Each subdirectory becomes one row, ordered by name; each " +
			"frame becomes one square cell.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			framesDir := cfg.Spritesheet.FramesDir
			if cmd.Flags().Changed("frames-dir") {
				framesDir = framesFlag
			}
			sheetPath := cfg.Spritesheet.SheetPath
			if cmd.Flags().Changed("out") {
				sheetPath = sheetFlag
			}
			cellSize := cfg.Spritesheet.CellSize
			if cmd.Flags().Changed("cell-size") {
				cellSize = cellFlag
			}
			backgroundHex := cfg.Spritesheet.Background
			if cmd.Flags().Changed("background") {
				backgroundHex = backgroundFlag
			}
			letterbox := cfg.Spritesheet.Letterbox
			if cmd.Flags().Changed("letterbox") {
				letterbox = letterboxFlag
			}

			background, err := imaging.ParseHexColor(backgroundHex)
			if err != nil {
				return fmt.Errorf("background color: %w", err)
			}

			sets, err := spritesheet.LoadSets(framesDir)
			if err != nil {
				return err
			}
			sheet, err := spritesheet.Compose(sets, spritesheet.Options{
				CellSize:       cellSize,
				Background:     background,
				LetterboxNames: spritesheet.LetterboxSet(letterbox),
			})
			if err != nil {
				if errors.Is(err, spritesheet.ErrNothingToCompose) {
					return fmt.Errorf("no frames found under %s", framesDir)
				}
				return err
			}
			if err := spritesheet.WriteSheet(sheet, sheetPath); err != nil {
				return err
			}

			bounds := sheet.Bounds()
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %dx%d sprite sheet (%d animations) to %s\n",
				bounds.Dx(), bounds.Dy(), len(sets), sheetPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&framesFlag, "frames-dir", "", "Directory holding per-animation frame subdirectories")
	cmd.Flags().StringVar(&sheetFlag, "out", "", "Output sprite sheet path")
	cmd.Flags().IntVar(&cellFlag, "cell-size", 0, "Square cell edge in pixels")
	cmd.Flags().StringVar(&backgroundFlag, "background", "", "Background fill color (#RRGGBB)")
	cmd.Flags().StringSliceVar(&letterboxFlag, "letterbox", nil, "Animations to letterbox instead of stretch")

	return cmd
}

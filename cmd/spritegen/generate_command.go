package main

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"spritegen/internal/config"
	"spritegen/internal/generate"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var promptFlag string
	var imageFlag string
	var modelFlag string
	var sizeFlag string
	var secondsFlag int
	var outputFlag string
	var intervalFlag int
	var timeoutFlag int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Submit a generation job, wait for it, and download the results",
		Long: "Submit an image-to-video generation job, poll until it finishes, and " +
			"download the video, thumbnail, and sprite sheet variants. The prompt may " +
			"be a preset name (see 'spritegen presets'), a path to a .txt file, or " +
			"literal prompt text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			driver, err := ctx.driver()
			if err != nil {
				return err
			}

			model := cfg.Video.Model
			if cmd.Flags().Changed("model") {
				model = modelFlag
			}
			size := cfg.Video.Size
			if cmd.Flags().Changed("size") {
				size = sizeFlag
			}
			seconds := cfg.Video.Seconds
			if cmd.Flags().Changed("seconds") {
				seconds = secondsFlag
			}
			image := cfg.Video.InputImage
			if cmd.Flags().Changed("image") {
				image = imageFlag
			}
			if image == "" {
				return fmt.Errorf("a reference image is required (--image or video.input_image in config)")
			}
			if !slices.Contains(config.ValidModels, model) {
				return fmt.Errorf("model must be one of %v", config.ValidModels)
			}
			if !slices.Contains(config.ValidSizes, size) {
				return fmt.Errorf("size must be one of %v", config.ValidSizes)
			}
			if !slices.Contains(config.ValidSeconds, seconds) {
				return fmt.Errorf("seconds must be one of %v", config.ValidSeconds)
			}
			outputDir := cfg.Output.Dir
			if cmd.Flags().Changed("output-dir") {
				outputDir = outputFlag
			}
			interval := cfg.Poll.IntervalSeconds
			if cmd.Flags().Changed("poll-interval") {
				interval = intervalFlag
			}
			timeout := cfg.Poll.TimeoutSeconds
			if cmd.Flags().Changed("timeout") {
				timeout = timeoutFlag
			}

			result, err := driver.Run(cmd.Context(), generate.RunRequest{
				PromptInput:  promptFlag,
				ImagePath:    image,
				Model:        model,
				Size:         size,
				Seconds:      seconds,
				OutputDir:    outputDir,
				PollInterval: time.Duration(interval) * time.Second,
				Timeout:      time.Duration(timeout) * time.Second,
			})
			if err != nil {
				if generate.IsTimeout(err) && result.Job.ID != "" {
					fmt.Fprintf(cmd.OutOrStdout(),
						"Job %s is still running; check later with 'spritegen status %s'\n",
						result.Job.ID, result.Job.ID)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Job %s completed\n", result.Job.ID)
			printDownloads(cmd, result.Downloads)
			return nil
		},
	}

	cmd.Flags().StringVarP(&promptFlag, "prompt", "p", "flying", "Preset name, .txt file path, or literal prompt text")
	cmd.Flags().StringVarP(&imageFlag, "image", "i", "", "Reference image path")
	cmd.Flags().StringVar(&modelFlag, "model", "", "Generation model")
	cmd.Flags().StringVar(&sizeFlag, "size", "", "Video size (WxH)")
	cmd.Flags().IntVar(&secondsFlag, "seconds", 0, "Clip duration in seconds")
	cmd.Flags().StringVarP(&outputFlag, "output-dir", "o", "", "Directory for downloaded artifacts")
	cmd.Flags().IntVar(&intervalFlag, "poll-interval", 0, "Seconds between status checks")
	cmd.Flags().IntVar(&timeoutFlag, "timeout", 0, "Polling budget in seconds")

	return cmd
}

func printDownloads(cmd *cobra.Command, downloads generate.DownloadResult) {
	out := cmd.OutOrStdout()

	variants := make([]string, 0, len(downloads.Written))
	for variant := range downloads.Written {
		variants = append(variants, variant)
	}
	sort.Strings(variants)
	for _, variant := range variants {
		fmt.Fprintf(out, "  %-12s %s\n", variant, downloads.Written[variant])
	}

	failed := make([]string, 0, len(downloads.Failed))
	for variant := range downloads.Failed {
		failed = append(failed, variant)
	}
	sort.Strings(failed)
	for _, variant := range failed {
		fmt.Fprintf(out, "  %-12s not downloaded: %v\n", variant, downloads.Failed[variant])
	}
}

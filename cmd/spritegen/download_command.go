package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"spritegen/internal/generate"
	"spritegen/internal/services/videoapi"
)

func newDownloadCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var labelFlag string

	cmd := &cobra.Command{
		Use:   "download <job-id>",
		Short: "Download the artifacts of a completed job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID := args[0]

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			driver, err := ctx.driver()
			if err != nil {
				return err
			}
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}

			job, err := client.Retrieve(cmd.Context(), jobID)
			if err != nil {
				return fmt.Errorf("retrieve job: %w", err)
			}
			if job.Status != videoapi.StatusCompleted {
				return fmt.Errorf("job %s is %s; only completed jobs have downloadable content", jobID, job.Status)
			}

			outputDir := cfg.Output.Dir
			if cmd.Flags().Changed("output-dir") {
				outputDir = outputFlag
			}

			downloads := driver.DownloadVariants(cmd.Context(), jobID,
				generate.VariantPaths(outputDir, labelFlag, jobID))
			if len(downloads.Written) == 0 {
				return fmt.Errorf("no variants downloaded for job %s", jobID)
			}
			printDownloads(cmd, downloads)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output-dir", "o", "", "Directory for downloaded artifacts")
	cmd.Flags().StringVar(&labelFlag, "label", "video", "Label prefix for output file names")

	return cmd
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"spritegen/internal/services/videoapi"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status <job-id>",
		Short: "Show the current status of a generation job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}

			job, err := client.Retrieve(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("retrieve job: %w", err)
			}

			rows := [][]string{
				{"ID", job.ID},
				{"Status", string(job.Status)},
				{"Progress", jobProgress(job)},
				{"Model", job.Model},
				{"Size", job.Size},
				{"Seconds", job.Seconds},
				{"Created", jobCreated(job)},
			}
			if message := job.FailureMessage(); job.Status == videoapi.StatusFailed && message != "" {
				rows = append(rows, []string{"Error", message})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows))
			if job.Status == videoapi.StatusFailed {
				return fmt.Errorf("job %s failed: %s", job.ID, job.FailureMessage())
			}
			return nil
		},
	}
}

func jobProgress(job videoapi.Job) string {
	if job.Progress == nil {
		return "-"
	}
	return fmt.Sprintf("%d%%", *job.Progress)
}

func jobCreated(job videoapi.Job) string {
	if job.CreatedAt == 0 {
		return "-"
	}
	return time.Unix(job.CreatedAt, 0).UTC().Format(time.RFC3339)
}

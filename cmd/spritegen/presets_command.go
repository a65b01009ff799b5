package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"spritegen/internal/prompts"
)

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "presets",
		Short:       "List the built-in animation prompt presets",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(prompts.Names()))
			for _, name := range prompts.Names() {
				text, _ := prompts.Lookup(name)
				rows = append(rows, []string{
					name,
					prompts.DisplayName(name),
					prompts.Summary(text),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Preset", "Name", "Description"}, rows))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"spritegen/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Set api_key (or export OPENAI_API_KEY) before generating.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var path string
			if ctx.configFlag != nil {
				path = strings.TrimSpace(*ctx.configFlag)
			}
			_, resolved, exists, err := config.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", resolved)
			if !exists {
				fmt.Fprintln(out, "Config file does not exist; defaults are in effect")
			}

			rows := [][]string{
				{"api.api_key", redactKey(cfg.API.APIKey)},
				{"api.base_url", cfg.API.BaseURL},
				{"api.timeout_seconds", fmt.Sprintf("%d", cfg.API.TimeoutSeconds)},
				{"video.model", cfg.Video.Model},
				{"video.size", cfg.Video.Size},
				{"video.seconds", fmt.Sprintf("%d", cfg.Video.Seconds)},
				{"video.input_image", cfg.Video.InputImage},
				{"poll.interval_seconds", fmt.Sprintf("%d", cfg.Poll.IntervalSeconds)},
				{"poll.timeout_seconds", fmt.Sprintf("%d", cfg.Poll.TimeoutSeconds)},
				{"output.dir", cfg.Output.Dir},
				{"spritesheet.frames_dir", cfg.Spritesheet.FramesDir},
				{"spritesheet.sheet_path", cfg.Spritesheet.SheetPath},
				{"spritesheet.cell_size", fmt.Sprintf("%d", cfg.Spritesheet.CellSize)},
				{"spritesheet.background", cfg.Spritesheet.Background},
				{"spritesheet.letterbox", strings.Join(cfg.Spritesheet.Letterbox, ", ")},
				{"logging.format", cfg.Logging.Format},
				{"logging.level", cfg.Logging.Level},
			}
			fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, rows))
			return nil
		},
	}
}

func redactKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "(unset)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeAPI(); err != nil {
		return err
	}
	c.normalizeVideo()
	c.normalizePoll()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSpritesheet()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeAPI() error {
	c.API.APIKey = strings.TrimSpace(c.API.APIKey)
	if c.API.APIKey == "" {
		if value, ok := os.LookupEnv("OPENAI_API_KEY"); ok {
			c.API.APIKey = strings.TrimSpace(value)
		}
	}
	c.API.BaseURL = strings.TrimSpace(c.API.BaseURL)
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = defaultAPITimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeVideo() {
	c.Video.Model = strings.ToLower(strings.TrimSpace(c.Video.Model))
	if c.Video.Model == "" {
		c.Video.Model = defaultModel
	}
	c.Video.Size = strings.ToLower(strings.TrimSpace(c.Video.Size))
	if c.Video.Size == "" {
		c.Video.Size = defaultSize
	}
	if c.Video.Seconds == 0 {
		c.Video.Seconds = defaultSeconds
	}
	c.Video.InputImage = strings.TrimSpace(c.Video.InputImage)
	if c.Video.InputImage == "" {
		c.Video.InputImage = defaultInputImage
	}
}

func (c *Config) normalizePoll() {
	if c.Poll.IntervalSeconds <= 0 {
		c.Poll.IntervalSeconds = defaultPollInterval
	}
	if c.Poll.TimeoutSeconds <= 0 {
		c.Poll.TimeoutSeconds = defaultPollTimeout
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = defaultOutputDir
	}
	if c.Output.Dir, err = expandPath(c.Output.Dir); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	if strings.TrimSpace(c.Spritesheet.FramesDir) == "" {
		c.Spritesheet.FramesDir = defaultFramesDir
	}
	if c.Spritesheet.FramesDir, err = expandPath(c.Spritesheet.FramesDir); err != nil {
		return fmt.Errorf("spritesheet.frames_dir: %w", err)
	}
	if strings.TrimSpace(c.Spritesheet.SheetPath) == "" {
		c.Spritesheet.SheetPath = defaultSheetPath
	}
	if c.Spritesheet.SheetPath, err = expandPath(c.Spritesheet.SheetPath); err != nil {
		return fmt.Errorf("spritesheet.sheet_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeSpritesheet() {
	if c.Spritesheet.CellSize <= 0 {
		c.Spritesheet.CellSize = defaultCellSize
	}
	c.Spritesheet.Background = strings.TrimSpace(c.Spritesheet.Background)
	if c.Spritesheet.Background == "" {
		c.Spritesheet.Background = defaultBackground
	}
	names := make([]string, 0, len(c.Spritesheet.Letterbox))
	seen := make(map[string]struct{}, len(c.Spritesheet.Letterbox))
	for _, name := range c.Spritesheet.Letterbox {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		names = append(names, normalized)
	}
	c.Spritesheet.Letterbox = names
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

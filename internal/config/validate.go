package config

import (
	"errors"
	"fmt"

	"spritegen/internal/imaging"
)

// Validate ensures the configuration is usable. Credentials are checked
// separately via RequireAPIKey so offline commands still load config.
func (c *Config) Validate() error {
	if err := c.validateVideo(); err != nil {
		return err
	}
	if err := c.validatePoll(); err != nil {
		return err
	}
	if err := c.validateSpritesheet(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateVideo() error {
	if !containsString(ValidModels, c.Video.Model) {
		return fmt.Errorf("video.model must be one of %v", ValidModels)
	}
	if !containsString(ValidSizes, c.Video.Size) {
		return fmt.Errorf("video.size must be one of %v", ValidSizes)
	}
	if !containsInt(ValidSeconds, c.Video.Seconds) {
		return fmt.Errorf("video.seconds must be one of %v", ValidSeconds)
	}
	return nil
}

func (c *Config) validatePoll() error {
	if c.Poll.IntervalSeconds <= 0 {
		return errors.New("poll.interval_seconds must be positive")
	}
	if c.Poll.TimeoutSeconds <= 0 {
		return errors.New("poll.timeout_seconds must be positive")
	}
	if c.Poll.TimeoutSeconds < c.Poll.IntervalSeconds {
		return errors.New("poll.timeout_seconds must be at least poll.interval_seconds")
	}
	return nil
}

func (c *Config) validateSpritesheet() error {
	if c.Spritesheet.CellSize <= 0 {
		return errors.New("spritesheet.cell_size must be positive")
	}
	if _, err := imaging.ParseHexColor(c.Spritesheet.Background); err != nil {
		return fmt.Errorf("spritesheet.background: %w", err)
	}
	return nil
}

func containsString(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}

func containsInt(values []int, value int) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}

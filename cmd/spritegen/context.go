package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"spritegen/internal/config"
	"spritegen/internal/generate"
	"spritegen/internal/logging"
	"spritegen/internal/services/videoapi"
)

// commandContext lazily shares configuration, the logger, and the API
// client across subcommands.
type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// apiClient builds an authenticated client. Commands that reach the
// network call this; offline commands never trigger the key check.
func (c *commandContext) apiClient() (*videoapi.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}
	return videoapi.NewClient(cfg.API.APIKey,
		videoapi.WithBaseURL(cfg.API.BaseURL),
		videoapi.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
	), nil
}

func (c *commandContext) driver() (*generate.Driver, error) {
	client, err := c.apiClient()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return generate.New(client, logger), nil
}

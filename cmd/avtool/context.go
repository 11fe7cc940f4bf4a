package main

import (
	"log/slog"
	"strings"
	"sync"

	"avtool/internal/config"
	"avtool/internal/logging"
)

type commandContext struct {
	configFlag  *string
	quietFlag   *bool
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, quietFlag, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		quietFlag:   quietFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
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
		level := cfg.Logging.Level
		if c.quietFlag != nil && *c.quietFlag {
			level = "error"
		}
		if c.verboseFlag != nil && *c.verboseFlag {
			level = "debug"
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:  level,
			Format: cfg.Logging.Format,
		})
	})
	return c.logger, c.loggerErr
}

// firstNonEmpty prefers an explicit flag value over the configured default.
func firstNonEmpty(flag, configured string) string {
	if strings.TrimSpace(flag) != "" {
		return flag
	}
	return configured
}

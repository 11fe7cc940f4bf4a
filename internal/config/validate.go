package config

import (
	"fmt"

	"avtool/internal/probe"
	"avtool/internal/render"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if !probe.ValidLogLevel(c.Probe.LogLevel) {
		return fmt.Errorf("probe.log_level: unknown level %q (valid: %v)", c.Probe.LogLevel, probe.LogLevels)
	}
	switch c.Probe.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("probe.color: must be auto, always, or never, got %q", c.Probe.Color)
	}
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	for _, letter := range c.Output.Streams {
		switch letter {
		case 'a', 'v', 'o', 'x':
		default:
			return fmt.Errorf("output.streams: unknown selector %q (valid: a, v, o, x)", string(letter))
		}
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

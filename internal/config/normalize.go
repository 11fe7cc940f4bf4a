package config

import (
	"strings"
)

func (c *Config) normalize() {
	c.Probe.Executable = strings.TrimSpace(c.Probe.Executable)
	if c.Probe.Executable == "" {
		c.Probe.Executable = defaultProbeExecutable
	}
	c.Probe.LogLevel = strings.ToLower(strings.TrimSpace(c.Probe.LogLevel))
	if c.Probe.LogLevel == "" {
		c.Probe.LogLevel = defaultProbeLogLevel
	}
	c.Probe.Color = strings.ToLower(strings.TrimSpace(c.Probe.Color))
	if c.Probe.Color == "" {
		c.Probe.Color = defaultProbeColor
	}

	c.WebP.WebpmuxBinary = strings.TrimSpace(c.WebP.WebpmuxBinary)
	if c.WebP.WebpmuxBinary == "" {
		c.WebP.WebpmuxBinary = defaultWebpmuxBinary
	}

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Streams = strings.ToLower(strings.TrimSpace(c.Output.Streams))
	if c.Output.Streams == "" {
		c.Output.Streams = defaultOutputStreams
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

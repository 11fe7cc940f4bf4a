package config

const (
	defaultProbeExecutable = "ffprobe"
	defaultProbeLogLevel   = "error"
	defaultProbeColor      = "auto"
	defaultWebpmuxBinary   = "webpmux"
	defaultOutputFormat    = "json"
	defaultOutputStreams   = "avo"
	defaultLogLevel        = "warn"
	defaultLogFormat       = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Probe: Probe{
			Executable: defaultProbeExecutable,
			LogLevel:   defaultProbeLogLevel,
			Color:      defaultProbeColor,
		},
		WebP: WebP{
			WebpmuxBinary: defaultWebpmuxBinary,
		},
		Output: Output{
			Format:  defaultOutputFormat,
			Streams: defaultOutputStreams,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

package config

const (
	defaultLogDir        = "~/.local/share/tfsmatch/logs"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultMinScore      = 10.0
	defaultCaptureSuffix = "._output"
	defaultWorkers       = 1
)

// Default returns the repository default configuration.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Matching: Matching{
			MinScore:      defaultMinScore,
			CaptureSuffix: defaultCaptureSuffix,
			Workers:       defaultWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

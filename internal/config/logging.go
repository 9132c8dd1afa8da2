package config

import "github.com/Faultbox/voxelview/internal/logger"

// LogOptions returns logger settings for c. Console output is off while
// the terminal backend owns the screen.
func (c *Config) LogOptions() logger.Options {
	opts := logger.Options{
		Level:   c.Logging.Level,
		Console: c.Display.Backend != BackendTerminal,
	}
	if c.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(c.Logging.LogFile)
	}
	return opts
}

package config

import "github.com/conn-castle/swinst/internal/manifest"

// Config holds user settings for swinst.
type Config struct {
	// DefaultSchema is used for manifests whose root has no schema attribute.
	// Empty means such manifests are rejected.
	DefaultSchema string       `toml:"default_schema"`
	Backend       string       `toml:"backend"`
	LogLevel      string       `toml:"log_level"`
	Output        OutputConfig `toml:"output"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	// Color forces color on or off. Nil means detect from the terminal.
	Color *bool `toml:"color"`
	JSON  bool  `toml:"json"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Backend:  BackendDynamic,
		LogLevel: LogLevelWarn,
	}
}

// Backend names.
const (
	BackendDynamic = manifest.BackendDynamic
	BackendStatic  = manifest.BackendStatic
)

// Log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

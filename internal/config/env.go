package config

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"

	"github.com/conn-castle/swinst/internal/messages"
)

// Environment variables recognized by swinst.
const (
	EnvConfig        = "SWINST_CONFIG"
	EnvDefaultSchema = "SWINST_DEFAULT_SCHEMA"
	EnvBackend       = "SWINST_BACKEND"
	EnvLogLevel      = "SWINST_LOG_LEVEL"
)

// envOverrides mirrors the overridable Config fields. Empty means unset.
type envOverrides struct {
	DefaultSchema string `env:"SWINST_DEFAULT_SCHEMA"`
	Backend       string `env:"SWINST_BACKEND"`
	LogLevel      string `env:"SWINST_LOG_LEVEL"`
}

// ApplyEnv overlays SWINST_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envdecode.Decode(&env); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf(messages.ConfigInvalidEnvFmt, err)
	}
	if env.DefaultSchema != "" {
		cfg.DefaultSchema = env.DefaultSchema
	}
	if env.Backend != "" {
		cfg.Backend = env.Backend
	}
	if env.LogLevel != "" {
		cfg.LogLevel = env.LogLevel
	}
	return nil
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/swinst/internal/messages"
)

// ErrConfigValidation wraps validation failures (as opposed to TOML syntax or
// filesystem errors) so callers can tell them apart with errors.Is.
var ErrConfigValidation = errors.New("config validation failed")

// Load reads the config file at path, applies environment overrides, and
// validates the result. When optional is true a missing file yields defaults.
func Load(path string, optional bool) (*Config, error) {
	cfg := Defaults()
	source := messages.ConfigSourceDefaults
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		parsed, err := ParseConfig(data, path)
		if err != nil {
			return nil, err
		}
		cfg = parsed
		source = path
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf(messages.ConfigFailedReadFmt, path, err)
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML data on top of Defaults. Unknown keys are rejected.
// source is used in error messages.
func ParseConfig(data []byte, source string) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	return cfg, nil
}

// decodeStrict re-decodes with unknown-field rejection, which toml.Unmarshal
// silently skips.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

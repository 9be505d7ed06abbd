package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/swinst/internal/manifest"
	"github.com/conn-castle/swinst/internal/messages"
)

var validBackends = map[string]struct{}{
	BackendDynamic: {},
	BackendStatic:  {},
}

var validLogLevels = map[string]struct{}{
	LogLevelDebug: {},
	LogLevelInfo:  {},
	LogLevelWarn:  {},
	LogLevelError: {},
}

// Validate ensures the config is consistent. source names where the values came from.
func (c *Config) Validate(source string) error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if _, ok := validBackends[c.Backend]; !ok {
		return fmt.Errorf(messages.ConfigBackendInvalidFmt, source, c.Backend)
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if _, ok := validLogLevels[c.LogLevel]; !ok {
		return fmt.Errorf(messages.ConfigLogLevelInvalidFmt, source, c.LogLevel)
	}
	if c.DefaultSchema != "" {
		if _, err := manifest.ParseSchemaVersion(c.DefaultSchema); err != nil {
			return fmt.Errorf(messages.ConfigDefaultSchemaBadFmt, source, c.DefaultSchema)
		}
	}
	return nil
}

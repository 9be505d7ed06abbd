package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/swinst/internal/messages"
)

// homeDirFunc is a seam for tests.
var homeDirFunc = homedir.Dir

// DefaultPath returns the config file location: $SWINST_CONFIG when set,
// otherwise $XDG_CONFIG_HOME/swinst/config.toml, otherwise
// ~/.config/swinst/config.toml.
func DefaultPath() (string, error) {
	if explicit := strings.TrimSpace(os.Getenv(EnvConfig)); explicit != "" {
		return ExpandPath(explicit)
	}
	if xdg := strings.TrimSpace(os.Getenv(messages.ConfigXDGConfigHomeVariable)); xdg != "" {
		return filepath.Join(xdg, messages.ConfigDefaultDirName, messages.ConfigDefaultFileName), nil
	}
	home, err := homeDirFunc()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Join(home, messages.ConfigDefaultParentDirName, messages.ConfigDefaultDirName, messages.ConfigDefaultFileName), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	return expanded, nil
}

package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	orig := homeDirFunc
	t.Cleanup(func() { homeDirFunc = orig })
	homeDirFunc = func() (string, error) { return "/home/ops", nil }

	t.Run("explicit env", func(t *testing.T) {
		t.Setenv(EnvConfig, "/etc/swinst.toml")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		got, err := DefaultPath()
		require.NoError(t, err)
		assert.Equal(t, "/etc/swinst.toml", got)
	})

	t.Run("xdg", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		got, err := DefaultPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/xdg", "swinst", "config.toml"), got)
	})

	t.Run("home", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		t.Setenv("XDG_CONFIG_HOME", "")
		got, err := DefaultPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/ops", ".config", "swinst", "config.toml"), got)
	})

	t.Run("home lookup fails", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		t.Setenv("XDG_CONFIG_HOME", "")
		homeDirFunc = func() (string, error) { return "", errors.New("no passwd entry") }
		_, err := DefaultPath()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resolve home dir")
	})
}

func TestExpandPathLeavesAbsolutePaths(t *testing.T) {
	got, err := ExpandPath("/srv/tools/bak/tool/tool_swinstall_stack")
	require.NoError(t, err)
	assert.Equal(t, "/srv/tools/bak/tool/tool_swinstall_stack", got)
}

func TestExpandPathRejectsUserSyntax(t *testing.T) {
	_, err := ExpandPath("~someone/config.toml")
	require.Error(t, err)
}

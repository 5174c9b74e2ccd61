package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath_UsesHomeDotConfig_When_NotWindows(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "elsewhere"))

	got, err := resolvePath("linux")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "thundery", "thundery.toml"), got)
}

func TestResolvePath_UsesUserConfigDir_When_Windows(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))
	t.Setenv("AppData", filepath.Join(home, "AppData"))

	got, err := resolvePath("windows")
	require.NoError(t, err)
	assert.Equal(t, "thundery.toml", filepath.Base(got))
	assert.Equal(t, "thundery", filepath.Base(filepath.Dir(got)))
}

func TestResolvePath_ReturnsError_When_HomeUnset(t *testing.T) {
	t.Setenv("HOME", "")

	_, err := resolvePath("linux")
	assert.Error(t, err)
}

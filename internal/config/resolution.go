package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	dirName  = "thundery"
	fileName = "thundery.toml"
)

// DefaultPath resolves the platform config file location. On Windows it
// sits under the user config directory; elsewhere it is a dotfile path
// under the home directory, regardless of XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	return resolvePath(runtime.GOOS)
}

func resolvePath(goos string) (string, error) {
	if goos == "windows" {
		root, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolving config directory: %w", err)
		}
		return filepath.Join(root, dirName, fileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", dirName, fileName), nil
}

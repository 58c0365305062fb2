package config

import (
	"os"
	"path/filepath"
)

const appName = "rail-inspector"

// UserConfigPath returns the path to the user-level config file, following
// os.UserConfigDir (which honours XDG_CONFIG_HOME on Linux).
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appName, "config.yml"), nil
}

// ProjectConfigPath returns the project config file relative to the
// current directory.
func ProjectConfigPath() string {
	return ".rail-inspector.yml"
}

// LegacyProjectConfigPath returns the deprecated JSON project config file.
func LegacyProjectConfigPath() string {
	return ".rail-inspector.json"
}

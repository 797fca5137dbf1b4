// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the per-user config directory under $HOME.
	GlobalDirName = ".mcl"
	// GlobalConfigName is the global script config file name.
	GlobalConfigName = "global-mcl.json"
	// LocalConfigName is the project-local script config file name.
	LocalConfigName = "mcl.json"
	// SettingsName is the application settings file name.
	SettingsName = "config.toml"
)

// GlobalDir returns the per-user mcl directory (~/.mcl).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalConfigPath returns the path of the global script config.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, GlobalConfigName), nil
}

// LocalConfigPath returns the path of the project-local script config,
// relative to the current working directory.
func LocalConfigPath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, LocalConfigName), nil
}

// SettingsPath returns the path of the application settings file.
func SettingsPath() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsName), nil
}

// EnsureGlobalDir creates the per-user mcl directory if it does not exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

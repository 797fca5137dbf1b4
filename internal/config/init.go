// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrAlreadyExists is returned when an init target is already present.
var ErrAlreadyExists = errors.New("config already exists")

// defaultConfigJSON is the skeleton written by init. Indented by hand so
// the file is pleasant to open in an editor.
const defaultConfigJSON = `{
    "vars": {},
    "scripts": {}
}
`

// InitLocal creates an empty mcl.json in the current directory. It never
// overwrites an existing file.
func InitLocal() (string, error) {
	path, err := LocalConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%w: %s", ErrAlreadyExists, path)
	}
	if err := os.WriteFile(path, []byte(defaultConfigJSON), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// EnsureGlobalConfig creates ~/.mcl and an empty global config when absent,
// returning the config path. Used by `mcl edit` so the editor always has a
// file to open.
func EnsureGlobalConfig() (string, error) {
	if err := EnsureGlobalDir(); err != nil {
		return "", err
	}
	path, err := GlobalConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(defaultConfigJSON), 0o644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return path, nil
}

// WriteDefaultSettings writes ~/.mcl/config.toml with the default settings
// when no settings file exists yet. Returns the path.
func WriteDefaultSettings() (string, error) {
	if err := EnsureGlobalDir(); err != nil {
		return "", err
	}
	path, err := SettingsPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%w: %s", ErrAlreadyExists, path)
	}

	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return "", fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

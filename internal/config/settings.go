// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type (
	// Settings holds application preferences, distinct from the script
	// config. Loaded from ~/.mcl/config.toml with MCL_* env overrides
	// (e.g. MCL_UI_VERBOSE=true).
	Settings struct {
		UI      UISettings      `mapstructure:"ui" toml:"ui"`
		Runtime RuntimeSettings `mapstructure:"runtime" toml:"runtime"`
	}

	// UISettings controls output behavior.
	UISettings struct {
		// Verbose enables debug-level logging by default.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
		// Theme selects the selector theme (default, charm, dracula,
		// catppuccin, base16).
		Theme string `mapstructure:"theme" toml:"theme"`
	}

	// RuntimeSettings controls command dispatch.
	RuntimeSettings struct {
		// Default selects the dispatch runtime: "native" or "virtual".
		Default string `mapstructure:"default" toml:"default"`
	}
)

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		UI:      UISettings{Theme: "default"},
		Runtime: RuntimeSettings{Default: "native"},
	}
}

// LoadSettings reads the application settings. A missing file yields the
// defaults; a malformed file is an error so typos never silently revert
// behavior.
func LoadSettings() (*Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate settings: %w", err)
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom is LoadSettings with an explicit path, for tests.
func LoadSettingsFrom(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetEnvPrefix("MCL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultSettings()
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("runtime.default", defaults.Runtime.Default)

	if err := v.ReadInConfig(); err != nil {
		// Viper signals a missing file two ways: ConfigFileNotFoundError
		// when searching paths, a plain fs error when SetConfigFile points
		// at a file that does not exist.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			settings := DefaultSettings()
			applyEnvOverrides(v, settings)
			return settings, nil
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &settings, nil
}

func applyEnvOverrides(v *viper.Viper, settings *Settings) {
	settings.UI.Verbose = v.GetBool("ui.verbose")
	settings.UI.Theme = v.GetString("ui.theme")
	settings.Runtime.Default = v.GetString("runtime.default")
}

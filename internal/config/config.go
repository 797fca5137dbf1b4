// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"mcl-cli/internal/script"
	"mcl-cli/pkg/cueutil"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

//go:embed config_schema.cue
var configSchema string

// ErrConfig is the sentinel error wrapped by ParseError.
var ErrConfig = errors.New("configuration error")

type (
	// Config is the one logical configuration of an invocation: the merged
	// script tree and variable table, plus the per-source trees retained
	// for listing provenance. Built once per invocation, read-only after.
	Config struct {
		// Scripts is the merged script tree, local overriding global.
		Scripts *script.Node
		// Vars is the merged variable table, local key winning.
		Vars map[string]string

		// GlobalScripts and LocalScripts are the unmerged per-source trees.
		GlobalScripts *script.Node
		LocalScripts  *script.Node
	}

	// ParseError is a configuration error carrying the offending source.
	ParseError struct {
		// Path is the config file that failed to load.
		Path string
		// Err is the underlying parse or validation failure.
		Err error
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid config %s: %v", e.Path, e.Err)
}

// Unwrap returns ErrConfig so callers can use errors.Is.
func (e *ParseError) Unwrap() error { return ErrConfig }

// Load reads, validates, and merges the global and local script configs.
// A missing source merges as an empty tree; a malformed one fails before
// any resolution begins.
func Load() (*Config, error) {
	globalPath, err := GlobalConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate global config: %w", err)
	}
	localPath, err := LocalConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate local config: %w", err)
	}
	return LoadFrom(globalPath, localPath)
}

// LoadFrom is Load with explicit source paths, for tests and tooling.
func LoadFrom(globalPath, localPath string) (*Config, error) {
	globalTree, globalVars, err := loadSource(globalPath, script.SourceGlobal)
	if err != nil {
		return nil, err
	}
	localTree, localVars, err := loadSource(localPath, script.SourceLocal)
	if err != nil {
		return nil, err
	}

	return &Config{
		Scripts:       script.Merge(globalTree, localTree),
		Vars:          script.MergeVars(globalVars, localVars),
		GlobalScripts: globalTree,
		LocalScripts:  localTree,
	}, nil
}

// loadSource reads one config file into a script tree and variable table.
// A missing file yields an empty tree.
func loadSource(path string, source script.Source) (*script.Node, map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			tree, parseErr := script.ParseTree(gjson.Result{}, source)
			return tree, map[string]string{}, parseErr
		}
		return nil, nil, &ParseError{Path: path, Err: err}
	}

	// Tolerate // comments and trailing commas in hand-edited configs.
	data := jsonc.ToJSON(raw)

	if !gjson.ValidBytes(data) {
		return nil, nil, &ParseError{Path: path, Err: errors.New("invalid JSON")}
	}

	if err := cueutil.ValidateJSON(configSchema, data, "#Config", path); err != nil {
		return nil, nil, &ParseError{Path: path, Err: err}
	}

	doc := gjson.ParseBytes(data)

	tree, err := script.ParseTree(doc.Get("scripts"), source)
	if err != nil {
		return nil, nil, &ParseError{Path: path, Err: err}
	}

	vars := make(map[string]string)
	doc.Get("vars").ForEach(func(key, value gjson.Result) bool {
		vars[key.String()] = value.String()
		return true
	})

	return tree, vars, nil
}

// SPDX-License-Identifier: MPL-2.0

// Package plugin discovers external mcl plugins. A plugin is any executable
// named mcl-<name> on PATH; invoking `mcl <name> ...` with no matching
// script dispatches to it. The resolution core only sees the narrow
// Registry interface, so tests inject fakes and the discovery mechanism can
// change without touching resolution.
package plugin

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"mcl-cli/internal/runtime"
)

// Prefix is the executable name prefix that marks an mcl plugin.
const Prefix = "mcl-"

type (
	// Callable runs a plugin with the given arguments and returns its exit
	// code. A non-nil error means the plugin could not be run at all.
	Callable func(ctx context.Context, args []string) (runtime.ExitCode, error)

	// Registry maps plugin names to callables.
	Registry interface {
		// Lookup returns the callable for name, if a plugin provides it.
		Lookup(name string) (Callable, bool)
		// Names returns the sorted names of all discovered plugins.
		Names() []string
	}

	// PathRegistry discovers plugins by scanning PATH for mcl-<name>
	// executables, the same convention git and kubectl plugins use.
	PathRegistry struct{}
)

// NewPathRegistry creates a PATH-based plugin registry.
func NewPathRegistry() *PathRegistry {
	return &PathRegistry{}
}

// Lookup finds an mcl-<name> executable on PATH.
func (r *PathRegistry) Lookup(name string) (Callable, bool) {
	if name == "" {
		return nil, false
	}
	path, err := exec.LookPath(Prefix + name)
	if err != nil {
		return nil, false
	}

	return func(ctx context.Context, args []string) (runtime.ExitCode, error) {
		cmd := exec.CommandContext(ctx, path, args...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return runtime.ExitCode(exitErr.ExitCode()), nil
			}
			return 1, err
		}
		return 0, nil
	}, true
}

// Names scans every PATH entry for mcl-* executables.
func (r *PathRegistry) Names() []string {
	seen := make(map[string]struct{})

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			name = strings.TrimSuffix(name, ".exe")
			if !strings.HasPrefix(name, Prefix) || name == Prefix {
				continue
			}
			seen[strings.TrimPrefix(name, Prefix)] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

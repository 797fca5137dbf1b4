// SPDX-License-Identifier: MPL-2.0

package invoke

import (
	"errors"
	"fmt"
	"strings"

	"mcl-cli/internal/runtime"
)

// ErrCancelled is returned when the user aborts the interactive selection.
// It is a distinct outcome, not an error in the script or config.
var ErrCancelled = errors.New("cancelled by user")

type (
	// NotFoundError is returned when a path segment matches no child of the
	// current group. Candidates are the valid sibling names at that point.
	NotFoundError struct {
		Path       []string
		Segment    string
		Candidates []string
	}

	// AmbiguousError is returned when the path stops on a group and no
	// interactive selector is available. Candidates are the group's child
	// names in merge-precedence order.
	AmbiguousError struct {
		Path       []string
		Candidates []string
	}

	// ExecutionError is returned when a dispatched fragment exits non-zero.
	// Fragments after the failing one were never dispatched.
	ExecutionError struct {
		Command string
		Code    runtime.ExitCode
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	at := "script"
	if len(e.Path) > 0 {
		at = fmt.Sprintf("script %q has", strings.Join(e.Path, "."))
		return fmt.Sprintf("%s no subcommand %q. Available options: %s",
			at, e.Segment, strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("script %q is not defined. Available options: %s",
		e.Segment, strings.Join(e.Candidates, ", "))
}

// Error implements the error interface.
func (e *AmbiguousError) Error() string {
	name := strings.Join(e.Path, ".")
	if name == "" {
		return fmt.Sprintf("a script path is required. Available options: %s",
			strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("script %q requires a subcommand. Available options: %s",
		name, strings.Join(e.Candidates, ", "))
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command failed with exit code %s: %s", e.Code, e.Command)
}

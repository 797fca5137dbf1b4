// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownRuntime is the sentinel error wrapped by UnknownRuntimeError.
var ErrUnknownRuntime = errors.New("unknown runtime")

type (
	// Runtime executes a single rendered command line through a shell
	// interpreter. Shell parsing is required because fragments may contain
	// variable-assignment prefixes or shell operators.
	Runtime interface {
		// Name returns the runtime name ("native", "virtual").
		Name() string
		// Available reports whether this runtime can execute on the host.
		Available() bool
		// Run dispatches one command line and blocks until it exits.
		Run(ctx context.Context, command string, opts RunOptions) *Result
	}

	// RunOptions carries the per-dispatch environment and I/O streams.
	RunOptions struct {
		// Env is the complete child environment in KEY=VALUE form.
		// Nil means inherit the current process environment.
		Env []string
		// WorkDir is the working directory; empty means inherit.
		WorkDir string

		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// Result is the outcome of one dispatch.
	Result struct {
		// ExitCode is the child's exit status. Zero on success.
		ExitCode ExitCode
		// Error is set only for failures to dispatch at all (no shell,
		// context cancelled); a plain non-zero exit leaves it nil.
		Error error
	}

	// UnknownRuntimeError is returned when a runtime name matches no
	// registered implementation.
	UnknownRuntimeError struct {
		Name string
	}
)

// Error implements the error interface.
func (e *UnknownRuntimeError) Error() string {
	return fmt.Sprintf("unknown runtime %q (valid: native, virtual)", e.Name)
}

// Unwrap returns ErrUnknownRuntime so callers can use errors.Is.
func (e *UnknownRuntimeError) Unwrap() error { return ErrUnknownRuntime }

// Select returns the runtime registered under name. An empty name selects
// the native runtime.
func Select(name string) (Runtime, error) {
	switch name {
	case "", "native":
		return NewNativeRuntime(), nil
	case "virtual":
		return NewVirtualRuntime(), nil
	default:
		return nil, &UnknownRuntimeError{Name: name}
	}
}

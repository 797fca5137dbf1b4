// SPDX-License-Identifier: MPL-2.0

// Package editor opens files in the user's configured editor.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"mvdan.cc/sh/v3/shell"
)

var (
	// ErrEditorNotFound is the sentinel error wrapped by NotFoundError.
	ErrEditorNotFound = errors.New("editor not found")
	// ErrEditorFailed is the sentinel error wrapped by ExitError.
	ErrEditorFailed = errors.New("editor failed")
)

type (
	// NotFoundError is returned when the editor executable cannot be run.
	NotFoundError struct {
		Editor string
	}

	// ExitError is returned when the editor exits non-zero.
	ExitError struct {
		Editor string
		Code   int
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("editor %q not found", e.Editor)
}

// Unwrap returns ErrEditorNotFound so callers can use errors.Is.
func (e *NotFoundError) Unwrap() error { return ErrEditorNotFound }

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("editor %q exited with status %d", e.Editor, e.Code)
}

// Unwrap returns ErrEditorFailed so callers can use errors.Is.
func (e *ExitError) Unwrap() error { return ErrEditorFailed }

// Open launches the user's editor on path and blocks until it exits.
//
// The editor comes from $EDITOR, falling back to nano (notepad on Windows).
// $EDITOR may carry arguments ("code --wait"); it is split with shell field
// rules, not on raw spaces.
func Open(path string) error {
	command := os.Getenv("EDITOR")
	if command == "" {
		command = defaultEditor()
	}

	fields, err := shell.Fields(command, nil)
	if err != nil {
		return fmt.Errorf("invalid EDITOR command %q: %w", command, err)
	}
	if len(fields) == 0 {
		return fmt.Errorf("EDITOR command cannot be empty")
	}

	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Editor: fields[0], Code: exitErr.ExitCode()}
		}
		return &NotFoundError{Editor: fields[0]}
	}
	return nil
}

func defaultEditor() string {
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "nano"
}

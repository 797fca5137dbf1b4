// SPDX-License-Identifier: MPL-2.0

package invoke

import (
	"context"
	"fmt"
	"io"
	"strings"

	"mcl-cli/internal/render"
	"mcl-cli/internal/runtime"
	"mcl-cli/internal/script"

	"github.com/charmbracelet/log"
)

type (
	// Selector resolves group ambiguity interactively. Select returns the
	// chosen candidate name, or an error wrapping ErrCancelled when the
	// user aborts.
	Selector interface {
		Select(prompt string, candidates []string) (string, error)
	}

	// Options carries everything one invocation needs. The fields are
	// read-only for its duration.
	Options struct {
		// Tree is the merged script tree.
		Tree *script.Node
		// Vars is the merged variable table.
		Vars map[string]string
		// Path is the user-supplied path segments; anything past the
		// resolved leaf becomes positional arguments.
		Path []string

		// DryRun emits rendered lines without spawning processes.
		DryRun bool
		// ShareVars exports the variable table and positional arguments
		// into each child's environment.
		ShareVars bool

		// Runtime dispatches rendered lines. Required unless DryRun.
		Runtime runtime.Runtime
		// Selector disambiguates group matches. Nil means non-interactive:
		// ambiguity is reported, never resolved by waiting for input.
		Selector Selector

		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer

		// Logger receives step-level progress at debug level.
		Logger *log.Logger
	}
)

// Run resolves the path and executes the matched leaf. The returned error
// is one of the taxonomy types (NotFoundError, AmbiguousError,
// ExecutionError, a render substitution error, or ErrCancelled), or nil on
// success.
func Run(ctx context.Context, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	segments := opts.Path
	for {
		res := script.Resolve(opts.Tree, segments)

		switch res.Kind {
		case script.ResolvedNotFound:
			return &NotFoundError{
				Path:       res.ConsumedPath,
				Segment:    res.FailedSegment,
				Candidates: res.Candidates,
			}

		case script.ResolvedGroup:
			if opts.Selector == nil {
				return &AmbiguousError{Path: res.ConsumedPath, Candidates: res.Candidates}
			}
			choice, err := opts.Selector.Select(selectPrompt(res.ConsumedPath), res.Candidates)
			if err != nil {
				return err
			}
			opts.Logger.Debug("selected subcommand", "choice", choice)
			segments = append(res.ConsumedPath, choice)

		case script.ResolvedLeaf:
			return executeLeaf(ctx, res.Leaf, res.Args, opts)
		}
	}
}

// executeLeaf renders every fragment, then dispatches the surviving lines
// sequentially, fail-fast.
func executeLeaf(ctx context.Context, leaf *script.Node, args []string, opts Options) error {
	lines, err := render.RenderAll(leaf.Steps(), render.Context{Args: args, Vars: opts.Vars})
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		opts.Logger.Info("no executable steps after rendering")
		return nil
	}

	var env []string
	if opts.ShareVars {
		env = runtime.ShareEnv(opts.Vars, args)
	}

	for _, line := range lines {
		opts.Logger.Debug("executing step", "command", line)

		if opts.DryRun {
			fmt.Fprintln(opts.Stdout, line)
			continue
		}

		result := opts.Runtime.Run(ctx, line, runtime.RunOptions{
			Env:    env,
			Stdin:  opts.Stdin,
			Stdout: opts.Stdout,
			Stderr: opts.Stderr,
		})
		if result.Error != nil {
			return result.Error
		}
		if !result.ExitCode.IsSuccess() {
			return &ExecutionError{Command: line, Code: result.ExitCode}
		}
	}

	return nil
}

func selectPrompt(consumed []string) string {
	if len(consumed) == 0 {
		return "Select a script"
	}
	return fmt.Sprintf("Select a subcommand of %q", strings.Join(consumed, "."))
}

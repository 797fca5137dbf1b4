// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mcl-cli/internal/app/invoke"
	"mcl-cli/internal/config"
	"mcl-cli/internal/issue"
	"mcl-cli/internal/plugin"
	"mcl-cli/internal/render"
	"mcl-cli/internal/runtime"
	"mcl-cli/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runCmd is the explicit form of the default shorthand: `mcl run build`
// and `mcl build` behave identically.
var runCmd = &cobra.Command{
	Use:   "run <script path...> [args...]",
	Short: "Run a configured script by path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd.Context(), cmd, args)
	},
}

func init() {
	runCmd.Flags().SetInterspersed(false)
}

// runInvocation is the single invocation boundary: it loads config, runs
// the resolution/substitution/execution pipeline, and converts every
// taxonomy error into a clean message plus exit code.
func runInvocation(ctx context.Context, cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return reportFailure(cmd, err)
	}

	rt, err := selectRuntime()
	if err != nil {
		return reportFailure(cmd, err)
	}

	var selector invoke.Selector
	if tui.IsInteractive() {
		selector = &tuiSelector{theme: tui.Theme(settings.UI.Theme)}
	}

	err = invoke.Run(ctx, invoke.Options{
		Tree:      cfg.Scripts,
		Vars:      cfg.Vars,
		Path:      args,
		DryRun:    dryRun,
		ShareVars: shareVars,
		Runtime:   rt,
		Selector:  selector,
		Stdin:     os.Stdin,
		Stdout:    cmd.OutOrStdout(),
		Stderr:    cmd.ErrOrStderr(),
		Logger:    log.Default(),
	})
	if err != nil {
		// A first-segment miss may still be an external plugin.
		var notFound *invoke.NotFoundError
		if errors.As(err, &notFound) && len(notFound.Path) == 0 {
			if code, ran, pluginErr := tryPlugin(ctx, args); ran {
				if pluginErr != nil {
					return reportFailure(cmd, pluginErr)
				}
				if !code.IsSuccess() {
					return &ExitError{Code: code, Err: fmt.Errorf("plugin %q exited with status %s", args[0], code)}
				}
				return nil
			}
		}
		return reportFailure(cmd, err)
	}

	if !dryRun {
		fmt.Fprintln(cmd.ErrOrStderr(), SuccessStyle.Render(fmt.Sprintf("Script '%s' completed", strings.Join(args, " "))))
	}
	return nil
}

// selectRuntime picks the dispatch runtime: --runtime flag first, then the
// settings default.
func selectRuntime() (runtime.Runtime, error) {
	name := runtimeName
	if name == "" {
		name = settings.Runtime.Default
	}
	return runtime.Select(name)
}

// tryPlugin dispatches to an mcl-<name> executable when one exists.
// The bool reports whether a plugin was found and run.
func tryPlugin(ctx context.Context, args []string) (runtime.ExitCode, bool, error) {
	registry := plugin.NewPathRegistry()
	callable, ok := registry.Lookup(args[0])
	if !ok {
		return 0, false, nil
	}
	log.Debug("dispatching to plugin", "name", args[0])
	code, err := callable(ctx, args[1:])
	return code, true, err
}

// reportFailure prints a styled, taxonomy-aware message and returns an
// ExitError carrying the appropriate code.
func reportFailure(cmd *cobra.Command, err error) error {
	w := cmd.ErrOrStderr()

	switch {
	case errors.Is(err, invoke.ErrCancelled):
		fmt.Fprintln(w, WarningStyle.Render("Cancelled."))
		return &ExitError{Code: 1, Err: err}

	case errors.Is(err, config.ErrConfig):
		fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		if card, ok := issue.Lookup(issue.ConfigParseErrorId); ok && verbose {
			if rendered, renderErr := card.Render(); renderErr == nil {
				fmt.Fprintln(w, rendered)
			}
		}
		return &ExitError{Code: 1, Err: err}

	case errors.Is(err, runtime.ErrShellNotFound):
		fmt.Fprintln(w, ErrorStyle.Render("Error: ")+err.Error())
		if card, ok := issue.Lookup(issue.ShellNotFoundId); ok {
			if rendered, renderErr := card.Render(); renderErr == nil {
				fmt.Fprintln(w, rendered)
			}
		}
		return &ExitError{Code: 1, Err: err}

	case errors.Is(err, render.ErrSubstitution):
		fmt.Fprintln(w, ErrorStyle.Render("Error: ")+err.Error())
		return &ExitError{Code: 1, Err: err}

	default:
		var execErr *invoke.ExecutionError
		if errors.As(err, &execErr) {
			fmt.Fprintln(w, ErrorStyle.Render("Error: ")+execErr.Error())
			return &ExitError{Code: execErr.Code, Err: err}
		}
		fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}
}

// tuiSelector adapts the huh-backed prompt to the invoke.Selector contract.
type tuiSelector struct {
	theme tui.Theme
}

// Select implements invoke.Selector.
func (s *tuiSelector) Select(prompt string, candidates []string) (string, error) {
	choice, err := tui.ChooseStrings(prompt, candidates, tui.Config{Theme: s.theme})
	if err != nil {
		if errors.Is(err, tui.ErrCancelled) {
			return "", invoke.ErrCancelled
		}
		return "", err
	}
	return choice, nil
}

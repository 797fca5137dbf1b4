// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"mcl-cli/internal/config"
	"mcl-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// dryRun prints rendered commands without executing them
	dryRun bool
	// shareVars exports vars and args into child process environments
	shareVars bool
	// verbose enables debug-level logging
	verbose bool
	// runtimeName overrides the dispatch runtime (native, virtual)
	runtimeName string

	// settings are the application preferences, loaded before any command
	settings = config.DefaultSettings()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "mcl [script path...] [args...]",
		Short: "A declarative script runner",
		Long: TitleStyle.Render("mcl") + SubtitleStyle.Render(" - A declarative script runner") + `

mcl resolves a path against a nested tree of named shell commands defined
in JSON config files and runs the match, fail-fast. A project-local
mcl.json overrides the global ~/.mcl/global-mcl.json entry by entry.

Command templates support positional placeholders ($1), optional lines
(?$1), named variables ($name), and a dollar escape ($$).

` + SubtitleStyle.Render("Examples:") + `
  mcl                       List all configured scripts
  mcl build                 Run the 'build' script
  mcl example date utc      Run the nested 'example.date.utc' script
  mcl greet Alice           Run 'greet' with $1 = Alice
  mcl init                  Create a local mcl.json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if err := cmd.Help(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout())
				return listScripts(cmd.OutOrStdout())
			}
			return runInvocation(cmd.Context(), cmd, args)
		},
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "print rendered commands without executing them")
	rootCmd.PersistentFlags().BoolVar(&shareVars, "share-vars", false, "export config vars and args to child processes via the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&runtimeName, "runtime", "", "dispatch runtime: native or virtual (default from settings)")

	// Stop flag parsing at the first positional so script arguments pass
	// through untouched.
	rootCmd.Flags().SetInterspersed(false)

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(pluginCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig loads application settings and configures logging.
func initRootConfig() {
	loaded, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	} else {
		settings = loaded
	}

	// Apply verbose from settings if not set via flag
	if !verbose {
		verbose = settings.UI.Verbose
	}

	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.SetReportTimestamp(false)
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their Format method; in verbose mode that includes the error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

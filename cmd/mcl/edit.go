// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"mcl-cli/internal/config"
	"mcl-cli/internal/editor"
	"mcl-cli/internal/issue"

	"github.com/spf13/cobra"
)

// editLocal switches edit from the global config to ./mcl.json
var editLocal bool

// editCmd opens a script config in $EDITOR.
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the global script config in your editor",
	Long: `Open a script config in $EDITOR (falling back to nano).

By default edit opens ~/.mcl/global-mcl.json, creating it first when
absent; with --local it opens ./mcl.json instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := editTarget()
		if err != nil {
			return reportFailure(cmd, err)
		}

		if err := editor.Open(path); err != nil {
			if errors.Is(err, editor.ErrEditorNotFound) {
				return reportFailure(cmd, issue.WrapWithContext(err, "open editor", path).
					WithSuggestion("set the EDITOR environment variable").
					WithSuggestion("install nano or set EDITOR to an installed editor"))
			}
			return reportFailure(cmd, err)
		}

		fmt.Fprintln(cmd.ErrOrStderr(), SuccessStyle.Render("Saved ")+CmdStyle.Render(path))
		return nil
	},
}

func init() {
	editCmd.Flags().BoolVar(&editLocal, "local", false, "edit ./mcl.json instead of the global config")
}

// editTarget resolves the config file to open, creating the global one on
// first use. A local target must already exist so edit never plants config
// files in arbitrary directories.
func editTarget() (string, error) {
	if !editLocal {
		return config.EnsureGlobalConfig()
	}

	path, err := config.LocalConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		return "", issue.WrapWithContext(err, "open local config", path).
			WithSuggestion("run 'mcl init' to create one")
	}
	return path, nil
}

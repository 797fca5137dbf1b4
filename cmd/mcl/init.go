// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"mcl-cli/internal/config"

	"github.com/spf13/cobra"
)

// initGlobal switches init from ./mcl.json to the global config
var initGlobal bool

// initCmd scaffolds an empty script config.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a skeleton mcl.json in the current directory",
	Long: `Create a skeleton script config.

By default init writes ./mcl.json; with --global it creates
~/.mcl/global-mcl.json instead. Existing files are never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initGlobal {
			path, err := config.EnsureGlobalConfig()
			if err != nil {
				return reportFailure(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Global config ready: ")+CmdStyle.Render(path))
			return nil
		}

		path, err := config.InitLocal()
		if err != nil {
			if errors.Is(err, config.ErrAlreadyExists) {
				fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Nothing to do: ")+
					fmt.Sprintf("%s already exists", CmdStyle.Render(path)))
				return nil
			}
			return reportFailure(cmd, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Created ")+CmdStyle.Render(path))
		fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("Add scripts to it, or run 'mcl edit' to open the global config."))
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "create the global config instead of a local one")
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"mcl-cli/internal/plugin"

	"github.com/spf13/cobra"
)

// pluginCmd groups plugin-related subcommands.
var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Inspect external mcl plugins",
	Long: `Inspect external mcl plugins.

A plugin is any executable named mcl-<name> on PATH. When an invocation's
first segment matches no configured script, mcl dispatches the whole
invocation to the plugin instead.`,
}

// pluginListCmd lists every plugin discovered on PATH.
var pluginListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plugins discovered on PATH",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := plugin.NewPathRegistry().Names()
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render(
				fmt.Sprintf("No plugins found. Put an executable named %s<name> on PATH.", plugin.Prefix)))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), TitleStyle.Render("Plugins"))
		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "  • %s %s\n",
				CmdStyle.Render(name),
				SubtitleStyle.Render("("+plugin.Prefix+name+")"))
		}
		return nil
	},
}

func init() {
	pluginCmd.AddCommand(pluginListCmd)
}

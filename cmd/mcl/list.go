// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"mcl-cli/internal/config"
	"mcl-cli/internal/issue"
	"mcl-cli/internal/script"
)

// listScripts prints every configured script path: local ones first (they
// override global entries of the same path), then global ones not shadowed
// by a local entry.
func listScripts(w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(w, WarningStyle.Render("Warning: ")+
			fmt.Sprintf("unable to load config (%v)", err))
		return nil
	}

	localPaths := script.Paths(cfg.LocalScripts)
	globalPaths := script.Paths(cfg.GlobalScripts)

	localSet := make(map[string]struct{}, len(localPaths))
	for _, p := range localPaths {
		localSet[p] = struct{}{}
	}
	var visibleGlobal []string
	for _, p := range globalPaths {
		if _, shadowed := localSet[p]; !shadowed {
			visibleGlobal = append(visibleGlobal, p)
		}
	}

	if len(localPaths) == 0 && len(visibleGlobal) == 0 {
		if card, ok := issue.Lookup(issue.NoScriptsConfiguredId); ok {
			if rendered, err := card.Render(); err == nil {
				fmt.Fprintln(w, rendered)
				return nil
			}
		}
		fmt.Fprintln(w, "No scripts configured yet. Try 'mcl init'.")
		return nil
	}

	if len(localPaths) > 0 {
		fmt.Fprintln(w, TitleStyle.Render("Local scripts")+SubtitleStyle.Render(" (override global when duplicated)"))
		for _, p := range localPaths {
			fmt.Fprintf(w, "  • %s\n", CmdStyle.Render(p))
		}
	}

	if len(visibleGlobal) > 0 {
		if len(localPaths) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, TitleStyle.Render("Global scripts"))
		for _, p := range visibleGlobal {
			fmt.Fprintf(w, "  • %s\n", CmdStyle.Render(p))
		}
	}

	return nil
}

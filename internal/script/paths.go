// SPDX-License-Identifier: MPL-2.0

package script

import (
	"sort"
	"strings"
)

// Paths returns the sorted dotted paths of every leaf in the tree. An empty
// group is listed under its own path so configured-but-empty namespaces stay
// visible in listings.
func Paths(tree *Node) []string {
	if tree == nil {
		return nil
	}

	var paths []string
	var walk func(prefix []string, node *Node)
	walk = func(prefix []string, node *Node) {
		if node.IsLeaf() || node.Len() == 0 {
			if len(prefix) > 0 {
				paths = append(paths, strings.Join(prefix, "."))
			}
			return
		}
		for _, c := range node.Children() {
			walk(append(prefix, c.Name), c.Node)
		}
	}
	walk(nil, tree)

	sort.Strings(paths)
	return paths
}

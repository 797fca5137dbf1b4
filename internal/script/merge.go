// SPDX-License-Identifier: MPL-2.0

package script

import "maps"

// Merge combines a global and a local script tree into a new tree.
//
// At each group level a local child replaces a global child of the same
// name, including cross-type replacement (a leaf may shadow a group and
// vice versa). When both sides hold a group under the same name the groups
// merge recursively. Child order in the merged group is local-sourced names
// first (in local order), then purely-global names (in global order), which
// is the order ambiguity candidates are presented in.
//
// Either argument may be nil, which merges as an empty tree. The inputs are
// not mutated.
func Merge(global, local *Node) *Node {
	if global == nil {
		global = NewGroup()
	}
	if local == nil {
		local = NewGroup()
	}
	return mergeGroups(global, local)
}

func mergeGroups(global, local *Node) *Node {
	merged := NewGroup()
	merged.source = local.source

	for _, lc := range local.children {
		gc, ok := global.Child(lc.Name)
		if ok && gc.IsGroup() && lc.Node.IsGroup() {
			merged.add(lc.Name, mergeGroups(gc, lc.Node))
			continue
		}
		// Replace-wins, including cross-type replacement.
		merged.add(lc.Name, lc.Node)
	}

	for _, gc := range global.children {
		if _, shadowed := local.Child(gc.Name); shadowed {
			continue
		}
		merged.add(gc.Name, gc.Node)
	}

	return merged
}

// MergeVars combines two variable tables, local key winning on collision.
// The result is a fresh map; inputs are not mutated.
func MergeVars(global, local map[string]string) map[string]string {
	merged := make(map[string]string, len(global)+len(local))
	maps.Copy(merged, global)
	maps.Copy(merged, local)
	return merged
}

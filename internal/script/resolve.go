// SPDX-License-Identifier: MPL-2.0

package script

import "slices"

type (
	// ResolutionKind tags the outcome of a tree walk.
	ResolutionKind int

	// Resolution is the tagged outcome of Resolve. Exactly one of the three
	// field sets is populated, selected by Kind.
	Resolution struct {
		Kind ResolutionKind

		// ResolvedLeaf: the matched leaf plus every unconsumed segment as a
		// positional argument, even if the leaf never references that many.
		Leaf *Node
		Args []string

		// ResolvedGroup: the group the walk stopped on and the segments
		// consumed to reach it.
		Group        *Node
		ConsumedPath []string

		// ResolvedNotFound: the segment with no matching child.
		FailedSegment string

		// Candidates holds the group's child names (ResolvedGroup) or the
		// valid sibling names at the failing segment (ResolvedNotFound),
		// both in merge-precedence order.
		Candidates []string
	}
)

const (
	// ResolvedLeaf means the walk landed on an executable leaf.
	ResolvedLeaf ResolutionKind = iota
	// ResolvedGroup means segments ran out while still on a group.
	ResolvedGroup
	// ResolvedNotFound means a segment matched no child of the current group.
	ResolvedNotFound
)

// Resolve walks the tree by path segments.
//
// Segments are consumed one at a time while the current node is a group
// containing the next segment. The moment the walk reaches a leaf it stops
// consuming: all remaining segments become positional arguments. Resolution
// is deterministic given (tree, segments).
func Resolve(tree *Node, segments []string) Resolution {
	current := tree
	var consumed []string

	for current.IsGroup() {
		if len(segments) == 0 {
			return Resolution{
				Kind:         ResolvedGroup,
				Group:        current,
				ConsumedPath: consumed,
				Candidates:   current.ChildNames(),
			}
		}

		next, ok := current.Child(segments[0])
		if !ok {
			return Resolution{
				Kind:          ResolvedNotFound,
				FailedSegment: segments[0],
				ConsumedPath:  consumed,
				Candidates:    current.ChildNames(),
			}
		}

		consumed = append(consumed, segments[0])
		segments = segments[1:]
		current = next
	}

	return Resolution{
		Kind:         ResolvedLeaf,
		Leaf:         current,
		Args:         slices.Clone(segments),
		ConsumedPath: consumed,
	}
}

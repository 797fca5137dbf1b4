// SPDX-License-Identifier: MPL-2.0

package script

import "slices"

type (
	// NodeKind distinguishes the two node variants.
	NodeKind int

	// Source records which config file a node came from. It drives the
	// candidate ordering after a merge (local-sourced names first) and the
	// provenance sections of the listing output.
	Source int

	// Node is one entry in the script tree: either a Leaf holding command
	// fragments or a Group holding named children. The variant is fixed at
	// construction and nodes are never mutated after the tree is built.
	Node struct {
		kind     NodeKind
		steps    []string // leaf only
		children []Child  // group only, insertion order
		source   Source
	}

	// Child is a named group member.
	Child struct {
		Name string
		Node *Node
	}
)

const (
	// KindLeaf marks a node holding executable command fragments.
	KindLeaf NodeKind = iota
	// KindGroup marks a node holding named children.
	KindGroup
)

const (
	// SourceGlobal marks nodes loaded from the global config.
	SourceGlobal Source = iota
	// SourceLocal marks nodes loaded from the project-local config.
	SourceLocal
)

// NewLeaf creates a leaf node from an ordered fragment list.
func NewLeaf(steps []string) *Node {
	return &Node{kind: KindLeaf, steps: slices.Clone(steps)}
}

// NewGroup creates an empty group node.
func NewGroup() *Node {
	return &Node{kind: KindGroup}
}

// Kind returns the node variant.
func (n *Node) Kind() NodeKind { return n.kind }

// IsLeaf reports whether the node holds command fragments.
func (n *Node) IsLeaf() bool { return n.kind == KindLeaf }

// IsGroup reports whether the node holds named children.
func (n *Node) IsGroup() bool { return n.kind == KindGroup }

// Source returns which config file the node came from.
func (n *Node) Source() Source { return n.source }

// Steps returns the leaf's command fragments in order.
// Returns nil for groups.
func (n *Node) Steps() []string {
	return slices.Clone(n.steps)
}

// Children returns the group's members in insertion order.
// Returns nil for leaves.
func (n *Node) Children() []Child {
	return slices.Clone(n.children)
}

// Child looks up a group member by name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.children {
		if c.Name == name {
			return c.Node, true
		}
	}
	return nil, false
}

// ChildNames returns the group's member names in insertion order.
func (n *Node) ChildNames() []string {
	names := make([]string, len(n.children))
	for i, c := range n.children {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of children for groups or fragments for leaves.
func (n *Node) Len() int {
	if n.kind == KindLeaf {
		return len(n.steps)
	}
	return len(n.children)
}

// add appends a child, replacing an existing one of the same name in place.
// Only used during tree construction; trees are immutable afterwards.
func (n *Node) add(name string, child *Node) {
	for i, c := range n.children {
		if c.Name == name {
			n.children[i].Node = child
			return
		}
	}
	n.children = append(n.children, Child{Name: name, Node: child})
}

// markSource recursively stamps the node and its descendants.
func (n *Node) markSource(src Source) {
	n.source = src
	for _, c := range n.children {
		c.Node.markSource(src)
	}
}

// String returns a human-readable kind name.
func (k NodeKind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

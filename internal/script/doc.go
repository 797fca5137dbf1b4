// SPDX-License-Identifier: MPL-2.0

// Package script models the merged script tree and its resolution.
//
// A tree node is a tagged variant: a Leaf holds an ordered list of command
// fragments, a Group holds named child nodes in insertion order. The variant
// is fixed at parse time, so resolution never inspects raw config shapes.
//
// Resolve walks a tree by path segments and yields one of three outcomes:
// a leaf (with the unconsumed segments as positional arguments), a group
// (ambiguous, with its candidate child names), or not-found (with the valid
// sibling names at the failing segment).
package script

// SPDX-License-Identifier: MPL-2.0

// Package invoke drives a single mcl invocation from path to shell
// dispatch.
//
// The per-invocation state machine:
//
//	Idle → Resolving → LeafFound  → Substituting → Executing → Done|Failed
//	                 → GroupFound → Selecting → (extend path, loop) | Cancelled
//	                 → NotFound (terminal)
//
// Every fragment of a leaf renders before the first dispatch, so a
// substitution failure aborts the leaf before anything runs. Dispatch is
// strictly sequential and fail-fast: the first non-zero exit ends the
// invocation with that status. Ambiguity without an interactive selector is
// reported like not-found, never defaulted to a child.
package invoke

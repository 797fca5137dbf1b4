// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides helpers for validating documents against
// embedded CUE schemas. The flow is always the same: compile the schema,
// build the user document, unify the two, validate concretely.
package cueutil

// SPDX-License-Identifier: MPL-2.0

// Package config loads and merges the mcl configuration.
//
// Two JSON sources define scripts and variables: the global file at
// ~/.mcl/global-mcl.json and the project-local ./mcl.json. Either may be
// missing (it merges as an empty tree); a malformed source is a
// configuration error carrying the offending path. Sources tolerate //
// comments and trailing commas (stripped by jsonc before parsing) and are
// validated against an embedded CUE schema before any tree is built.
//
// Application settings (verbosity, theme, default runtime) live separately
// in ~/.mcl/config.toml, loaded through Viper with MCL_* environment
// overrides.
package config

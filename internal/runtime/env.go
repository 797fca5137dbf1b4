// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"fmt"
	"os"
	"sort"
)

// ArgEnvPrefix is the name prefix for exported positional arguments:
// MCL_ARG_1, MCL_ARG_2, ...
const ArgEnvPrefix = "MCL_ARG_"

// ShareEnv builds the child environment for share-vars mode: the current
// process environment, each variable under its bare name, and each
// positional argument under MCL_ARG_<1-based-index>. The export is one-way;
// nothing is ever read back from the child.
func ShareEnv(vars map[string]string, args []string) []string {
	env := os.Environ()
	env = append(env, EnvToSlice(vars)...)
	for i, arg := range args {
		env = append(env, fmt.Sprintf("%s%d=%s", ArgEnvPrefix, i+1, arg))
	}
	return env
}

// EnvToSlice converts an environment map to sorted KEY=VALUE form.
// Sorting keeps dispatch deterministic for tests and dry-run inspection.
func EnvToSlice(env map[string]string) []string {
	entries := make([]string, 0, len(env))
	for k, v := range env {
		entries = append(entries, k+"="+v)
	}
	sort.Strings(entries)
	return entries
}

// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"reflect"
	"slices"
	"testing"
)

func TestEnvToSlice(t *testing.T) {
	t.Parallel()

	got := EnvToSlice(map[string]string{"b": "2", "a": "1", "c": "3"})
	want := []string{"a=1", "b=2", "c=3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EnvToSlice = %v, want %v", got, want)
	}

	if got := EnvToSlice(nil); len(got) != 0 {
		t.Errorf("EnvToSlice(nil) = %v, want empty", got)
	}
}

func TestShareEnv(t *testing.T) {
	t.Parallel()

	env := ShareEnv(
		map[string]string{"region": "eu-west-1"},
		[]string{"Alice", "two words"},
	)

	for _, want := range []string{
		"region=eu-west-1",
		"MCL_ARG_1=Alice",
		"MCL_ARG_2=two words",
	} {
		if !slices.Contains(env, want) {
			t.Errorf("ShareEnv missing %q", want)
		}
	}

	// The process environment is inherited, so the result is strictly
	// larger than the exported table.
	if len(env) <= 3 {
		t.Errorf("ShareEnv has %d entries, expected inherited environment too", len(env))
	}
}

func TestShareEnvEmpty(t *testing.T) {
	t.Parallel()

	env := ShareEnv(nil, nil)
	for _, entry := range env {
		if len(entry) >= len(ArgEnvPrefix) && entry[:len(ArgEnvPrefix)] == ArgEnvPrefix {
			t.Errorf("ShareEnv(nil, nil) exported %q", entry)
		}
	}
}

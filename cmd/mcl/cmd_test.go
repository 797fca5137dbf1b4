// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"mcl-cli/internal/app/invoke"
	"mcl-cli/internal/config"
	"mcl-cli/internal/render"
	"mcl-cli/internal/runtime"
	"mcl-cli/internal/testutil"

	"github.com/spf13/cobra"
)

func newTestCommand() (*cobra.Command, *strings.Builder, *strings.Builder) {
	var out, errOut strings.Builder
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

func TestReportFailure(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   runtime.ExitCode
		wantStderr string
	}{
		{
			name:       "cancel",
			err:        invoke.ErrCancelled,
			wantCode:   1,
			wantStderr: "Cancelled.",
		},
		{
			name:       "config parse error",
			err:        &config.ParseError{Path: "./mcl.json", Err: errors.New("invalid JSON")},
			wantCode:   1,
			wantStderr: "invalid config ./mcl.json",
		},
		{
			name:       "substitution error",
			err:        &render.MissingArgError{Index: 2},
			wantCode:   1,
			wantStderr: "missing positional argument $2",
		},
		{
			name:       "execution error mirrors the child exit code",
			err:        &invoke.ExecutionError{Command: "make", Code: 7},
			wantCode:   7,
			wantStderr: "command failed with exit code 7",
		},
		{
			name:       "not found",
			err:        &invoke.NotFoundError{Segment: "buld", Candidates: []string{"build"}},
			wantCode:   1,
			wantStderr: `script "buld" is not defined`,
		},
		{
			name:       "ambiguous",
			err:        &invoke.AmbiguousError{Path: []string{"db"}, Candidates: []string{"dump"}},
			wantCode:   1,
			wantStderr: `script "db" requires a subcommand`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, errOut := newTestCommand()

			err := reportFailure(cmd, tt.err)

			var exitErr *ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("reportFailure returned %v, want ExitError", err)
			}
			if exitErr.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", exitErr.Code, tt.wantCode)
			}
			if !strings.Contains(errOut.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", errOut.String(), tt.wantStderr)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &ExitError{Code: 3, Err: cause}
	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want the cause message", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}

	bare := &ExitError{Code: 5}
	if bare.Error() != "exit status 5" {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestListScripts(t *testing.T) {
	t.Run("local-first with unshadowed global entries", func(t *testing.T) {
		home := t.TempDir()
		work := t.TempDir()
		t.Cleanup(testutil.SetHomeDir(t, home))
		t.Cleanup(testutil.MustChdir(t, work))

		globalPath, err := config.EnsureGlobalConfig()
		if err != nil {
			t.Fatal(err)
		}
		testutil.MustWriteFile(t, globalPath, `{"scripts": {"build": "make", "deploy": "deploy.sh"}}`)
		testutil.MustWriteFile(t, work+"/"+config.LocalConfigName, `{"scripts": {"build": "go build"}}`)

		var out strings.Builder
		if err := listScripts(&out); err != nil {
			t.Fatalf("listScripts returned error: %v", err)
		}

		got := out.String()
		if !strings.Contains(got, "Local scripts") {
			t.Errorf("output missing local section: %q", got)
		}
		if !strings.Contains(got, "deploy") {
			t.Errorf("output missing unshadowed global entry: %q", got)
		}
		// "build" is local; the global section holds only "deploy".
		if strings.Count(got, "build") != 1 {
			t.Errorf("shadowed global entry listed twice: %q", got)
		}
	})

	t.Run("no scripts shows the getting-started card", func(t *testing.T) {
		t.Cleanup(testutil.SetHomeDir(t, t.TempDir()))
		t.Cleanup(testutil.MustChdir(t, t.TempDir()))

		var out strings.Builder
		if err := listScripts(&out); err != nil {
			t.Fatalf("listScripts returned error: %v", err)
		}
		if !strings.Contains(out.String(), "mcl init") {
			t.Errorf("output does not point at mcl init: %q", out.String())
		}
	})
}

func TestSelectRuntimeFlagOverridesSettings(t *testing.T) {
	origName, origSettings := runtimeName, settings
	t.Cleanup(func() { runtimeName, settings = origName, origSettings })

	settings = config.DefaultSettings()
	runtimeName = ""
	rt, err := selectRuntime()
	if err != nil {
		t.Fatalf("selectRuntime returned error: %v", err)
	}
	if rt.Name() != "native" {
		t.Errorf("default runtime = %q, want %q", rt.Name(), "native")
	}

	runtimeName = "virtual"
	rt, err = selectRuntime()
	if err != nil {
		t.Fatalf("selectRuntime returned error: %v", err)
	}
	if rt.Name() != "virtual" {
		t.Errorf("flag runtime = %q, want %q", rt.Name(), "virtual")
	}

	runtimeName = "docker"
	if _, err := selectRuntime(); err == nil {
		t.Error("selectRuntime with unknown name succeeded")
	}
}

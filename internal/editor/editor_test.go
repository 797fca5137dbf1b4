// SPDX-License-Identifier: MPL-2.0

package editor

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"mcl-cli/internal/testutil"
)

func TestOpen(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX editor fixtures")
	}

	t.Run("runs the EDITOR command with the path appended", func(t *testing.T) {
		dir := t.TempDir()
		marker := filepath.Join(dir, "opened")
		fake := filepath.Join(dir, "fake-editor")
		script := "#!/bin/sh\necho \"$1\" > " + marker + "\n"
		if err := os.WriteFile(fake, []byte(script), 0o755); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(testutil.MustSetenv(t, "EDITOR", fake))

		if err := Open("/tmp/some-config.json"); err != nil {
			t.Fatalf("Open returned error: %v", err)
		}

		content, err := os.ReadFile(marker)
		if err != nil {
			t.Fatalf("editor was not invoked: %v", err)
		}
		if got := strings.TrimSpace(string(content)); got != "/tmp/some-config.json" {
			t.Errorf("editor received %q, want the target path", got)
		}
	})

	t.Run("EDITOR with arguments is split on shell field rules", func(t *testing.T) {
		dir := t.TempDir()
		marker := filepath.Join(dir, "opened")
		fake := filepath.Join(dir, "fake-editor")
		script := "#!/bin/sh\necho \"$1 $2\" > " + marker + "\n"
		if err := os.WriteFile(fake, []byte(script), 0o755); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(testutil.MustSetenv(t, "EDITOR", fake+" '--wait flag'"))

		if err := Open("target.json"); err != nil {
			t.Fatalf("Open returned error: %v", err)
		}

		content, err := os.ReadFile(marker)
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.TrimSpace(string(content)); got != "--wait flag target.json" {
			t.Errorf("editor received %q", got)
		}
	})

	t.Run("non-zero exit maps to ExitError", func(t *testing.T) {
		t.Cleanup(testutil.MustSetenv(t, "EDITOR", "false"))

		err := Open("whatever.json")
		if !errors.Is(err, ErrEditorFailed) {
			t.Fatalf("error = %v, want ErrEditorFailed", err)
		}
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("error = %v, want ExitError", err)
		}
		if exitErr.Code != 1 {
			t.Errorf("Code = %d, want 1", exitErr.Code)
		}
	})

	t.Run("missing editor maps to NotFoundError", func(t *testing.T) {
		t.Cleanup(testutil.MustSetenv(t, "EDITOR", "definitely-not-an-editor-xyz"))

		err := Open("whatever.json")
		if !errors.Is(err, ErrEditorNotFound) {
			t.Fatalf("error = %v, want ErrEditorNotFound", err)
		}
	})

	t.Run("unset EDITOR falls back to the default editor", func(t *testing.T) {
		t.Cleanup(testutil.MustUnsetenv(t, "EDITOR"))
		// An empty PATH keeps the fallback from actually launching an
		// installed nano; the error must name the default, proving it was
		// the command attempted.
		t.Cleanup(testutil.MustSetenv(t, "PATH", t.TempDir()))

		err := Open("whatever.json")
		if !errors.Is(err, ErrEditorNotFound) {
			t.Fatalf("error = %v, want ErrEditorNotFound", err)
		}
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("error = %v, want NotFoundError", err)
		}
		if notFound.Editor != "nano" {
			t.Errorf("Editor = %q, want the nano fallback", notFound.Editor)
		}
	})

	t.Run("unparsable EDITOR is rejected", func(t *testing.T) {
		t.Cleanup(testutil.MustSetenv(t, "EDITOR", "vim 'unterminated"))

		if err := Open("whatever.json"); err == nil {
			t.Fatal("Open with unparsable EDITOR succeeded")
		}
	})
}

// SPDX-License-Identifier: MPL-2.0

package render

import (
	"errors"
	"testing"
)

func TestRender(t *testing.T) {
	t.Parallel()

	ctx := Context{
		Args: []string{"Alice", "eu-west-1"},
		Vars: map[string]string{"region": "us-east-2", "name_2": "Bob"},
	}

	tests := []struct {
		name     string
		fragment string
		want     string
		dropped  bool
	}{
		{
			name:     "plain text passes through",
			fragment: "echo hello",
			want:     "echo hello",
		},
		{
			name:     "positional argument",
			fragment: "greet $1",
			want:     "greet Alice",
		},
		{
			name:     "second positional argument",
			fragment: "deploy --region $2",
			want:     "deploy --region eu-west-1",
		},
		{
			name:     "variable substitution",
			fragment: "aws s3 ls --region $region",
			want:     "aws s3 ls --region us-east-2",
		},
		{
			name:     "variable name may contain digits and underscores",
			fragment: "hi $name_2",
			want:     "hi Bob",
		},
		{
			name:     "escaped dollar is literal",
			fragment: "awk '{print $$1}'",
			want:     "awk '{print $1}'",
		},
		{
			name:     "escaped dollar beats following digits",
			fragment: "cost: $$100",
			want:     "cost: $100",
		},
		{
			name:     "optional argument present",
			fragment: "ls ?$2",
			want:     "ls eu-west-1",
		},
		{
			name:     "optional argument absent drops the line",
			fragment: "ls ?$3",
			dropped:  true,
		},
		{
			name:     "question mark without placeholder is literal",
			fragment: "grep foo? file",
			want:     "grep foo? file",
		},
		{
			name:     "comment line is dropped",
			fragment: "# build step $1 $undefined",
			dropped:  true,
		},
		{
			name:     "indented comment line is dropped",
			fragment: "   \t# notes",
			dropped:  true,
		},
		{
			name:     "hash mid-line is not a comment",
			fragment: "echo '#1' $1",
			want:     "echo '#1' Alice",
		},
		{
			name:     "lone dollar at end of line",
			fragment: "echo cost$",
			want:     "echo cost$",
		},
		{
			name:     "dollar before punctuation is literal",
			fragment: "echo $(date)",
			want:     "echo $(date)",
		},
		{
			name:     "whitespace-only result drops the line",
			fragment: "   \t  ",
			dropped:  true,
		},
		{
			name:     "surrounding whitespace is trimmed",
			fragment: "  echo $1  ",
			want:     "echo Alice",
		},
		{
			name:     "multiple placeholders in one line",
			fragment: "scp $1 $region:$2",
			want:     "scp Alice us-east-2:eu-west-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, dropped, err := Render(tt.fragment, ctx)
			if err != nil {
				t.Fatalf("Render(%q) returned error: %v", tt.fragment, err)
			}
			if dropped != tt.dropped {
				t.Fatalf("Render(%q) dropped = %v, want %v", tt.fragment, dropped, tt.dropped)
			}
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.fragment, got, tt.want)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	ctx := Context{
		Args: []string{"one"},
		Vars: map[string]string{"region": "eu-west-1"},
	}

	tests := []struct {
		name     string
		fragment string
		wantErr  error
	}{
		{
			name:     "missing positional argument",
			fragment: "echo $2",
			wantErr:  &MissingArgError{},
		},
		{
			name:     "zero is never a valid position",
			fragment: "echo $0",
			wantErr:  &MissingArgError{},
		},
		{
			name:     "unknown variable",
			fragment: "echo $undefined",
			wantErr:  &UnknownPlaceholderError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Render(tt.fragment, ctx)
			if err == nil {
				t.Fatalf("Render(%q) succeeded, want error", tt.fragment)
			}
			if !errors.Is(err, ErrSubstitution) {
				t.Errorf("Render(%q) error %v does not wrap ErrSubstitution", tt.fragment, err)
			}

			switch tt.wantErr.(type) {
			case *MissingArgError:
				var target *MissingArgError
				if !errors.As(err, &target) {
					t.Errorf("Render(%q) error %v is not a MissingArgError", tt.fragment, err)
				}
			case *UnknownPlaceholderError:
				var target *UnknownPlaceholderError
				if !errors.As(err, &target) {
					t.Errorf("Render(%q) error %v is not an UnknownPlaceholderError", tt.fragment, err)
				}
			}
		})
	}
}

func TestRenderOverlongDigitRun(t *testing.T) {
	t.Parallel()

	ctx := Context{Args: []string{"one"}}

	// A digit run wider than int still reads as a positional reference: it
	// can never be satisfied, so the required form errors and the optional
	// form drops the line. The token must never reach the shell literally.
	_, _, err := Render("echo $99999999999999999999", ctx)
	if err == nil {
		t.Fatal("overlong required placeholder rendered, want error")
	}
	if !errors.Is(err, ErrSubstitution) {
		t.Errorf("error %v does not wrap ErrSubstitution", err)
	}
	var missing *MissingArgError
	if !errors.As(err, &missing) {
		t.Errorf("error %v is not a MissingArgError", err)
	}

	_, dropped, err := Render("cleanup ?$99999999999999999999", ctx)
	if err != nil {
		t.Fatalf("overlong optional placeholder errored: %v", err)
	}
	if !dropped {
		t.Error("overlong optional placeholder did not drop the line")
	}
}

func TestRenderMissingArgIndex(t *testing.T) {
	t.Parallel()

	_, _, err := Render("echo $7", Context{})
	var missing *MissingArgError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingArgError, got %v", err)
	}
	if missing.Index != 7 {
		t.Errorf("Index = %d, want 7", missing.Index)
	}
}

// A rendered line with no remaining placeholders must render to itself, so
// substituted values are never re-expanded.
func TestRenderIdempotent(t *testing.T) {
	t.Parallel()

	ctx := Context{
		Args: []string{"$region"},
		Vars: map[string]string{"region": "eu-west-1"},
	}

	first, dropped, err := Render("echo $1", ctx)
	if err != nil || dropped {
		t.Fatalf("first pass: line=%q dropped=%v err=%v", first, dropped, err)
	}
	if first != "echo $region" {
		t.Fatalf("first pass = %q, want %q", first, "echo $region")
	}

	// Rendering the output again expands $region, proving the first pass
	// made exactly one sweep and did not rescan the substituted value.
	second, dropped, err := Render(first, ctx)
	if err != nil || dropped {
		t.Fatalf("second pass: line=%q dropped=%v err=%v", second, dropped, err)
	}
	if second != "echo eu-west-1" {
		t.Errorf("second pass = %q, want %q", second, "echo eu-west-1")
	}
}

func TestRenderAll(t *testing.T) {
	t.Parallel()

	ctx := Context{
		Args: []string{"prod"},
		Vars: map[string]string{"bucket": "assets"},
	}

	t.Run("renders in order and drops silent lines", func(t *testing.T) {
		t.Parallel()

		fragments := []string{
			"# release procedure",
			"build --target $1",
			"upload s3://$bucket ?$2",
			"notify $1",
		}
		lines, err := RenderAll(fragments, ctx)
		if err != nil {
			t.Fatalf("RenderAll returned error: %v", err)
		}
		want := []string{"build --target prod", "notify prod"}
		if len(lines) != len(want) {
			t.Fatalf("RenderAll = %v, want %v", lines, want)
		}
		for i := range want {
			if lines[i] != want[i] {
				t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
			}
		}
	})

	t.Run("any failure aborts the whole list", func(t *testing.T) {
		t.Parallel()

		fragments := []string{"echo $1", "echo $2", "echo $1"}
		lines, err := RenderAll(fragments, ctx)
		if err == nil {
			t.Fatalf("RenderAll = %v, want error", lines)
		}
		if !errors.Is(err, ErrSubstitution) {
			t.Errorf("error %v does not wrap ErrSubstitution", err)
		}
		if lines != nil {
			t.Errorf("lines = %v, want nil on failure", lines)
		}
	})

	t.Run("all lines dropped yields empty result", func(t *testing.T) {
		t.Parallel()

		lines, err := RenderAll([]string{"# only", "?$2 cleanup"}, ctx)
		if err != nil {
			t.Fatalf("RenderAll returned error: %v", err)
		}
		if len(lines) != 0 {
			t.Errorf("lines = %v, want empty", lines)
		}
	})
}

func TestIsComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fragment string
		want     bool
	}{
		{"# comment", true},
		{"   # indented", true},
		{"\t#tabbed", true},
		{"echo # trailing", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsComment(tt.fragment); got != tt.want {
			t.Errorf("IsComment(%q) = %v, want %v", tt.fragment, got, tt.want)
		}
	}
}

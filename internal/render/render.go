// SPDX-License-Identifier: MPL-2.0

// Package render implements placeholder substitution for command fragments.
//
// Rendering is a single left-to-right scan over the raw fragment. Token
// precedence, highest first:
//
//  1. a leading '#' (after optional whitespace) makes the whole line a
//     comment, dropped before any placeholder scanning;
//  2. "$$" emits a literal '$' ("$$1" renders as "$1", never a value);
//  3. "?$N" substitutes positional argument N if present, otherwise drops
//     the entire line;
//  4. "$N" substitutes positional argument N or fails;
//  5. "$name" substitutes a variable or fails (unknown placeholders are
//     errors, not literal pass-through);
//  6. any other '$' is literal.
//
// Substituted values are never rescanned, so re-rendering an already
// rendered string with no remaining placeholders is a no-op.
package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrSubstitution is the sentinel error wrapped by all substitution failures.
var ErrSubstitution = errors.New("substitution error")

type (
	// Context carries the read-only inputs of one rendering pass.
	Context struct {
		// Args are the positional arguments, addressed 1-based by $N.
		Args []string
		// Vars is the merged variable table, addressed by $name.
		Vars map[string]string
	}

	// MissingArgError is returned when a required positional placeholder $N
	// has no corresponding argument.
	MissingArgError struct {
		// Index is the 1-based position the fragment asked for.
		Index int
	}

	// UnknownPlaceholderError is returned when $name matches neither a
	// variable nor a digit sequence.
	UnknownPlaceholderError struct {
		Name string
	}
)

// Error implements the error interface.
func (e *MissingArgError) Error() string {
	return fmt.Sprintf("missing positional argument $%d", e.Index)
}

// Unwrap returns ErrSubstitution so callers can use errors.Is.
func (e *MissingArgError) Unwrap() error { return ErrSubstitution }

// Error implements the error interface.
func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("unknown variable '$%s'", e.Name)
}

// Unwrap returns ErrSubstitution so callers can use errors.Is.
func (e *UnknownPlaceholderError) Unwrap() error { return ErrSubstitution }

// IsComment reports whether the fragment is a comment line: its first
// non-whitespace character is '#'. Comment lines never error, even if they
// contain '$'.
func IsComment(fragment string) bool {
	return strings.HasPrefix(strings.TrimLeft(fragment, " \t"), "#")
}

// Render renders one fragment against the context.
//
// The returned bool reports whether the line was dropped: comment lines,
// lines whose ?$N argument is absent, and lines that render to whitespace
// only. A dropped line is never an error; a missing required argument or an
// unknown variable is.
func Render(fragment string, ctx Context) (string, bool, error) {
	if IsComment(fragment) {
		return "", true, nil
	}

	var out strings.Builder
	out.Grow(len(fragment))

	for i := 0; i < len(fragment); {
		c := fragment[i]

		// "?$N": optional positional. A '?' not followed by "$<digits>" is
		// literal.
		if c == '?' && i+1 < len(fragment) && fragment[i+1] == '$' {
			if n, width := scanDigits(fragment[i+2:]); width > 0 {
				if n < 1 || n > len(ctx.Args) {
					return "", true, nil
				}
				out.WriteString(ctx.Args[n-1])
				i += 2 + width
				continue
			}
		}

		if c != '$' {
			out.WriteByte(c)
			i++
			continue
		}

		// "$$": escaped dollar, beats any digits that follow.
		if i+1 < len(fragment) && fragment[i+1] == '$' {
			out.WriteByte('$')
			i += 2
			continue
		}

		// "$N": required positional.
		if n, width := scanDigits(fragment[i+1:]); width > 0 {
			if n < 1 || n > len(ctx.Args) {
				return "", false, &MissingArgError{Index: n}
			}
			out.WriteString(ctx.Args[n-1])
			i += 1 + width
			continue
		}

		// "$name": variable.
		if name, width := scanIdent(fragment[i+1:]); width > 0 {
			value, ok := ctx.Vars[name]
			if !ok {
				return "", false, &UnknownPlaceholderError{Name: name}
			}
			out.WriteString(value)
			i += 1 + width
			continue
		}

		// Lone '$' (end of line, or followed by punctuation): literal.
		out.WriteByte('$')
		i++
	}

	line := strings.TrimSpace(out.String())
	if line == "" {
		return "", true, nil
	}
	return line, false, nil
}

// RenderAll renders every fragment of a leaf in order, returning the
// non-dropped lines. Any substitution failure aborts the whole list, so a
// leaf either renders completely or not at all.
func RenderAll(fragments []string, ctx Context) ([]string, error) {
	var lines []string
	for _, fragment := range fragments {
		line, dropped, err := Render(fragment, ctx)
		if err != nil {
			return nil, err
		}
		if dropped {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// scanDigits reads a leading decimal run, returning its value and width in
// bytes. Width 0 means no digits.
func scanDigits(s string) (int, int) {
	w := 0
	for w < len(s) && s[w] >= '0' && s[w] <= '9' {
		w++
	}
	if w == 0 {
		return 0, 0
	}
	n, err := strconv.Atoi(s[:w])
	if err != nil {
		// A run too long for int can never index an argument. Saturate so
		// the caller still treats it as a positional reference instead of
		// passing the token through literally.
		n = math.MaxInt
	}
	return n, w
}

// scanIdent reads a leading identifier ([A-Za-z_][A-Za-z0-9_]*), returning
// it and its width in bytes. Width 0 means no identifier.
func scanIdent(s string) (string, int) {
	if len(s) == 0 || !isIdentStart(s[0]) {
		return "", 0
	}
	w := 1
	for w < len(s) && isIdentPart(s[w]) {
		w++
	}
	return s[:w], w
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

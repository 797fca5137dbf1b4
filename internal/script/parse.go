// SPDX-License-Identifier: MPL-2.0

package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidNode is the sentinel error wrapped by InvalidNodeError.
var ErrInvalidNode = errors.New("invalid script node")

// InvalidNodeError is returned when a config value cannot be modeled as a
// Leaf or a Group (e.g. a number, a boolean, or a list with non-string
// elements).
type InvalidNodeError struct {
	// Path is the dotted location of the offending value.
	Path string
	// Detail describes what was found there.
	Detail string
}

// Error implements the error interface.
func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("script %q: %s", e.Path, e.Detail)
}

// Unwrap returns ErrInvalidNode so callers can use errors.Is.
func (e *InvalidNodeError) Unwrap() error { return ErrInvalidNode }

// ParseTree builds a script tree from a gjson "scripts" object, preserving
// document order. gjson is used (rather than encoding/json) because its
// ForEach iterates keys in document order, which the Group invariant
// requires.
func ParseTree(scripts gjson.Result, source Source) (*Node, error) {
	if !scripts.Exists() {
		empty := NewGroup()
		empty.markSource(source)
		return empty, nil
	}
	if !scripts.IsObject() {
		return nil, &InvalidNodeError{Path: "scripts", Detail: "must be a JSON object"}
	}

	root, err := parseGroup(scripts, nil)
	if err != nil {
		return nil, err
	}
	root.markSource(source)
	return root, nil
}

func parseGroup(obj gjson.Result, path []string) (*Node, error) {
	group := NewGroup()

	var parseErr error
	obj.ForEach(func(key, value gjson.Result) bool {
		child, err := parseNode(value, append(path, key.String()))
		if err != nil {
			parseErr = err
			return false
		}
		group.add(key.String(), child)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return group, nil
}

func parseNode(value gjson.Result, path []string) (*Node, error) {
	switch {
	case value.Type == gjson.String:
		return NewLeaf([]string{value.String()}), nil

	case value.IsArray():
		var steps []string
		for _, elem := range value.Array() {
			if elem.Type != gjson.String {
				return nil, &InvalidNodeError{
					Path:   dotted(path),
					Detail: "list entries must all be strings",
				}
			}
			steps = append(steps, elem.String())
		}
		return NewLeaf(steps), nil

	case value.IsObject():
		return parseGroup(value, path)

	default:
		return nil, &InvalidNodeError{
			Path:   dotted(path),
			Detail: fmt.Sprintf("unsupported value %s (want string, list of strings, or object)", value.Type),
		}
	}
}

func dotted(path []string) string {
	return strings.Join(path, ".")
}

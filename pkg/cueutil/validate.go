// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

// ValidateJSON checks a JSON document against a definition in an embedded
// CUE schema.
//
//  1. Compile the schema and look up schemaPath (e.g. "#Config").
//  2. Extract the JSON document into a CUE expression.
//  3. Unify and validate with concrete values required.
//
// The filename only labels error messages.
func ValidateJSON(schema string, data []byte, schemaPath, filename string) error {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	expr, err := cuejson.Extract(filename, data)
	if err != nil {
		return FormatError(err, filename)
	}

	docValue := ctx.BuildExpr(expr)
	if docValue.Err() != nil {
		return FormatError(docValue.Err(), filename)
	}

	unified := schemaRoot.Unify(docValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return FormatError(err, filename)
	}

	return nil
}

// FormatError flattens a CUE error into a single message with the filename
// prefixed, keeping positions where CUE provides them.
func FormatError(err error, filename string) error {
	if errs := cueerrors.Errors(err); len(errs) > 0 {
		details := make([]string, 0, len(errs))
		for _, e := range errs {
			details = append(details, e.Error())
		}
		if len(details) == 1 {
			return fmt.Errorf("%s: %s", filename, details[0])
		}
		msg := details[0]
		for _, d := range details[1:] {
			msg += "; " + d
		}
		return fmt.Errorf("%s: %s", filename, msg)
	}
	return fmt.Errorf("%s: %w", filename, err)
}

// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pattern

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEncoding indicates a pattern that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("pattern is not valid UTF-8")

	// ErrUnbalancedParens indicates that a pattern opens an optional group it
	// never closes, or closes one it never opened.
	ErrUnbalancedParens = errors.New("unbalanced parentheses in pattern")

	// ErrNestingTooDeep indicates more levels of optional-group nesting than
	// the parser accepts.
	ErrNestingTooDeep = errors.New("optional groups nest too deeply")

	// ErrDuplicateParam indicates that the same parameter name appears more
	// than once in a pattern.
	ErrDuplicateParam = errors.New("duplicate parameter name in pattern")

	// ErrEmptyParamName indicates a ':' with no identifier after it.
	ErrEmptyParamName = errors.New("empty parameter name in pattern")

	// ErrReservedParam indicates a parameter declared with the reserved
	// masked key name.
	ErrReservedParam = errors.New("reserved parameter name")

	// ErrTrailingWildcard indicates that WithPairedWildcard was requested but
	// the pattern does not end with a top-level "*" segment.
	ErrTrailingWildcard = errors.New("paired wildcard requires a trailing wildcard segment")

	// ErrMissingParam indicates that Build was called without a value for a
	// required parameter or wildcard position.
	ErrMissingParam = errors.New("missing required parameter")
)

// ParseError reports a pattern that could not be parsed. Offset is the byte
// position in Pattern where scanning failed. ParseError wraps one of the
// package's sentinel errors, so errors.Is(err, ErrUnbalancedParens) and
// friends work through it.
type ParseError struct {
	Pattern string
	Offset  int
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q at offset %d: %v", e.Pattern, e.Offset, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

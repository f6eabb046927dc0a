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
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse scans raw into a segment tree and compiles the match program for it.
// The returned Pattern is immutable and safe for concurrent use.
//
// The grammar, applied per path component:
//
//   - a component starting with ':' declares a named parameter;
//   - a component that is exactly "*" is an anonymous wildcard;
//   - '(' and ')' delimit optional groups, which may nest and need not align
//     with '/' boundaries;
//   - everything else is literal text, matched verbatim.
//
// Parameter names must be unique within one pattern. Wildcards are anonymous
// and may repeat; their captures are carried in pattern order.
func Parse(raw string, opts ...Option) (*Pattern, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !utf8.ValidString(raw) {
		return nil, &ParseError{Pattern: raw, Err: ErrInvalidEncoding}
	}

	s := &scanner{raw: raw}
	segments, err := s.scan()
	if err != nil {
		return nil, err
	}

	if cfg.pairedWildcard {
		if len(segments) == 0 || segments[len(segments)-1].Kind != SegmentWildcard {
			return nil, &ParseError{Pattern: raw, Offset: len(raw), Err: ErrTrailingWildcard}
		}
	}

	p := &Pattern{
		raw:        raw,
		segments:   segments,
		paired:     cfg.pairedWildcard,
		paramNames: s.names,
		wildcards:  s.wildcards,
	}
	p.compile()
	return p, nil
}

// MustParse is like Parse but panics on error. It is intended for patterns
// known at compile time, typically package-level variables.
func MustParse(raw string, opts ...Option) *Pattern {
	p, err := Parse(raw, opts...)
	if err != nil {
		panic(fmt.Sprintf("pattern.MustParse: %v", err))
	}
	return p
}

// maxGroupDepth bounds optional-group nesting. Route patterns in the wild
// stay in single digits; the bound keeps the compiled expression well inside
// the regexp package's own nesting limit.
const maxGroupDepth = 32

// scanner walks a raw pattern in a single forward pass, tracking group
// nesting and parameter uniqueness as it goes.
type scanner struct {
	raw       string
	seen      map[string]struct{}
	names     []string
	wildcards int
}

// scan tokenizes the pattern. Tokens are delimited by '/', '(' and ')'; the
// separator itself joins the surrounding literal text so literals keep their
// slashes and built paths reproduce the pattern byte for byte.
func (s *scanner) scan() ([]Segment, error) {
	stack := [][]Segment{nil}
	var opens []int
	start := 0

	appendSegment := func(seg Segment) {
		top := len(stack) - 1
		if seg.Kind == SegmentLiteral {
			if n := len(stack[top]); n > 0 && stack[top][n-1].Kind == SegmentLiteral {
				stack[top][n-1].Text += seg.Text
				return
			}
		}
		stack[top] = append(stack[top], seg)
	}

	flush := func(end int) error {
		if end <= start {
			return nil
		}
		seg, err := s.classify(s.raw[start:end], start)
		if err != nil {
			return err
		}
		appendSegment(seg)
		return nil
	}

	for i := 0; i < len(s.raw); i++ {
		switch s.raw[i] {
		case '/':
			if err := flush(i); err != nil {
				return nil, err
			}
			appendSegment(Segment{Kind: SegmentLiteral, Text: "/"})
			start = i + 1
		case '(':
			if err := flush(i); err != nil {
				return nil, err
			}
			if len(stack) > maxGroupDepth {
				return nil, &ParseError{Pattern: s.raw, Offset: i, Err: ErrNestingTooDeep}
			}
			stack = append(stack, nil)
			opens = append(opens, i)
			start = i + 1
		case ')':
			if err := flush(i); err != nil {
				return nil, err
			}
			if len(stack) == 1 {
				return nil, &ParseError{Pattern: s.raw, Offset: i, Err: ErrUnbalancedParens}
			}
			group := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			opens = opens[:len(opens)-1]
			appendSegment(Segment{Kind: SegmentOptional, Children: group})
			start = i + 1
		}
	}
	if err := flush(len(s.raw)); err != nil {
		return nil, err
	}
	if len(opens) > 0 {
		return nil, &ParseError{Pattern: s.raw, Offset: opens[len(opens)-1], Err: ErrUnbalancedParens}
	}
	return stack[0], nil
}

// classify turns one token into a segment, recording parameter names and
// wildcard ordinals along the way.
func (s *scanner) classify(tok string, offset int) (Segment, error) {
	switch {
	case strings.HasPrefix(tok, ":"):
		name := tok[1:]
		if name == "" {
			return Segment{}, &ParseError{Pattern: s.raw, Offset: offset, Err: ErrEmptyParamName}
		}
		if name == MaskedParam {
			return Segment{}, &ParseError{
				Pattern: s.raw,
				Offset:  offset,
				Err:     fmt.Errorf("%w: %s", ErrReservedParam, name),
			}
		}
		if _, dup := s.seen[name]; dup {
			return Segment{}, &ParseError{
				Pattern: s.raw,
				Offset:  offset,
				Err:     fmt.Errorf("%w: %s", ErrDuplicateParam, name),
			}
		}
		if s.seen == nil {
			s.seen = make(map[string]struct{})
		}
		s.seen[name] = struct{}{}
		s.names = append(s.names, name)
		return Segment{Kind: SegmentParam, Name: name}, nil
	case tok == "*":
		seg := Segment{Kind: SegmentWildcard, Index: s.wildcards}
		s.wildcards++
		return seg, nil
	default:
		return Segment{Kind: SegmentLiteral, Text: tok}, nil
	}
}

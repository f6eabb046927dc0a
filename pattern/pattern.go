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

import "regexp"

// Pattern is a compiled route pattern. It matches concrete paths into
// parameter sets and builds concrete paths back out of parameter sets, so a
// single declaration serves both directions.
//
// A Pattern is compiled once by Parse and is immutable afterwards; all
// methods are safe for concurrent use.
type Pattern struct {
	raw      string
	segments []Segment
	paired   bool

	// match program, produced by compile
	re      *regexp.Regexp
	slots   []captureSlot
	literal string
	static  bool
	bound   map[string]struct{}

	paramNames []string
	wildcards  int
}

// String returns the raw pattern text as given to Parse.
func (p *Pattern) String() string {
	return p.raw
}

// Segments returns a deep copy of the parsed segment tree.
func (p *Pattern) Segments() []Segment {
	return cloneSegments(p.segments)
}

// Params returns the declared parameter names in pattern order.
func (p *Pattern) Params() []string {
	if p.paramNames == nil {
		return nil
	}
	out := make([]string, len(p.paramNames))
	copy(out, p.paramNames)
	return out
}

// Wildcards returns the number of anonymous wildcard segments.
func (p *Pattern) Wildcards() int {
	return p.wildcards
}

// Static reports whether the pattern is pure literal text. Static patterns
// match by string equality and never consult a regular expression.
func (p *Pattern) Static() bool {
	return p.static
}

// PairedWildcard reports whether the trailing wildcard captures the path
// remainder as key/value pairs.
func (p *Pattern) PairedWildcard() bool {
	return p.paired
}

// HasParam reports whether the pattern declares the named parameter.
func (p *Pattern) HasParam(name string) bool {
	_, ok := p.bound[name]
	return ok
}

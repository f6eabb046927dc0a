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
)

// Build renders a concrete path from the pattern and the given parameters.
// A nil params is treated as empty.
//
// Literals emit verbatim. A parameter emits its present, non-null value; at
// a required position an absent or null value is ErrMissingParam. A wildcard
// emits the masked element at its ordinal. An optional group is included
// only when every direct parameter child has a present, non-null value and
// every direct wildcard child has a masked element; nested groups do not
// vote and decide their own inclusion. An excluded group contributes
// nothing, its nested content included.
//
// When at least one group was excluded, separator runs left behind at the
// splice points are collapsed to a single '/', and a result emptied entirely
// renders "/". A build that excluded nothing returns the assembled text
// verbatim.
func (p *Pattern) Build(params *Params) (string, error) {
	if params == nil {
		params = NewParams()
	}
	if p.static {
		return p.literal, nil
	}

	var b strings.Builder
	st := &buildState{params: params}
	if err := p.buildSegments(&b, p.segments, true, st); err != nil {
		return "", err
	}

	out := b.String()
	if st.cleanup {
		out = collapseSeparators(out)
		if out == "" {
			out = "/"
		}
	}
	return out, nil
}

type buildState struct {
	params  *Params
	cleanup bool
}

func (p *Pattern) buildSegments(b *strings.Builder, segs []Segment, top bool, st *buildState) error {
	for i, seg := range segs {
		switch seg.Kind {
		case SegmentLiteral:
			b.WriteString(seg.Text)
		case SegmentParam:
			v, ok := st.params.Get(seg.Name)
			if !ok {
				return fmt.Errorf("%w: %s", ErrMissingParam, seg.Name)
			}
			b.WriteString(v)
		case SegmentWildcard:
			if p.paired && top && i == len(segs)-1 {
				if !p.appendPairs(b, st.params) {
					st.cleanup = true
				}
				continue
			}
			v, ok := st.params.maskedAt(seg.Index)
			if !ok {
				return fmt.Errorf("%w: %s[%d]", ErrMissingParam, MaskedParam, seg.Index)
			}
			b.WriteString(v)
		case SegmentOptional:
			if !includeGroup(seg.Children, st.params) {
				st.cleanup = true
				continue
			}
			if err := p.buildSegments(b, seg.Children, false, st); err != nil {
				return err
			}
		}
	}
	return nil
}

// includeGroup decides whether an optional group takes part in the built
// path. Only direct parameter and wildcard children vote.
func includeGroup(children []Segment, params *Params) bool {
	for _, seg := range children {
		switch seg.Kind {
		case SegmentParam:
			if _, ok := params.Get(seg.Name); !ok {
				return false
			}
		case SegmentWildcard:
			if _, ok := params.maskedAt(seg.Index); !ok {
				return false
			}
		}
	}
	return true
}

// appendPairs renders every caller-supplied non-null name the pattern does
// not bind as a trailing key/value component run, in sorted name order. It
// reports whether anything was written.
func (p *Pattern) appendPairs(b *strings.Builder, params *Params) bool {
	wrote := false
	for _, name := range params.Names() {
		if _, bound := p.bound[name]; bound {
			continue
		}
		v, ok := params.Get(name)
		if !ok {
			continue
		}
		if wrote {
			b.WriteByte('/')
		}
		b.WriteString(name)
		b.WriteByte('/')
		b.WriteString(v)
		wrote = true
	}
	return wrote
}

// collapseSeparators rewrites the runs of '/' that excluded groups leave at
// their splice points down to a single separator.
func collapseSeparators(s string) string {
	if !strings.Contains(s, "//") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	var prev byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '/' && prev == '/' {
			continue
		}
		b.WriteByte(c)
		prev = c
	}
	return b.String()
}

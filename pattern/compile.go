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
	"regexp"
	"strings"
)

// captureSlot maps one capture group of the match program back to the
// parameter or wildcard that produced it. Slot order equals capture-group
// order: group i+1 of a submatch belongs to slot i.
type captureSlot struct {
	name     string // parameter name; empty for wildcards
	wildcard bool
	index    int  // wildcard ordinal
	required bool // not nested inside any optional group
	rest     bool // trailing wildcard of a paired pattern, captures the remainder
}

// compile translates the segment tree into the match program: either a
// literal fast path for static patterns or a single anchored regular
// expression with one capture group per parameter and wildcard.
//
// Literal text passes through regexp.QuoteMeta and optional groups compile to
// non-capturing "(?:...)?" units, so the expression is valid by construction
// and capture numbering stays aligned with the slot table.
func (p *Pattern) compile() {
	p.bound = make(map[string]struct{}, len(p.paramNames))
	for _, name := range p.paramNames {
		p.bound[name] = struct{}{}
	}

	if segmentsStatic(p.segments) {
		p.static = true
		p.literal = literalText(p.segments)
		return
	}

	var b strings.Builder
	b.WriteByte('^')
	p.emit(&b, p.segments, false, true)
	b.WriteByte('$')
	p.re = regexp.MustCompile(b.String())
}

func (p *Pattern) emit(b *strings.Builder, segs []Segment, optional, top bool) {
	for i, seg := range segs {
		switch seg.Kind {
		case SegmentLiteral:
			b.WriteString(regexp.QuoteMeta(seg.Text))
		case SegmentParam:
			b.WriteString("([^/]+)")
			p.slots = append(p.slots, captureSlot{name: seg.Name, required: !optional})
		case SegmentWildcard:
			if p.paired && top && i == len(segs)-1 {
				b.WriteString("(.+)")
				p.slots = append(p.slots, captureSlot{wildcard: true, index: seg.Index, required: true, rest: true})
				continue
			}
			b.WriteString("([^/]+)")
			p.slots = append(p.slots, captureSlot{wildcard: true, index: seg.Index, required: !optional})
		case SegmentOptional:
			b.WriteString("(?:")
			p.emit(b, seg.Children, true, false)
			b.WriteString(")?")
		}
	}
}

// segmentsStatic reports whether the sequence is pure literal text. Any
// group counts as dynamic even when its children are literals, because it
// still admits two match shapes.
func segmentsStatic(segs []Segment) bool {
	for _, seg := range segs {
		if seg.Kind != SegmentLiteral {
			return false
		}
	}
	return true
}

func literalText(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.Text)
	}
	return b.String()
}

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

// SegmentKind identifies the variant of a Segment node.
type SegmentKind uint8

const (
	// SegmentLiteral is verbatim path text. Separator characters belong to
	// the literal, so "/users/" round-trips byte for byte.
	SegmentLiteral SegmentKind = iota

	// SegmentParam is a named parameter such as ":id". It captures exactly
	// one non-empty path component.
	SegmentParam

	// SegmentWildcard is an anonymous "*" capture, identified by its ordinal
	// position among the pattern's wildcards.
	SegmentWildcard

	// SegmentOptional is a parenthesized group that may be absent from a
	// matched or built path. Groups nest arbitrarily.
	SegmentOptional
)

// String returns a human-readable name for the segment kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentLiteral:
		return "literal"
	case SegmentParam:
		return "param"
	case SegmentWildcard:
		return "wildcard"
	case SegmentOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// Segment is one node of a parsed pattern tree. Exactly one variant field is
// meaningful, selected by Kind: Text for literals, Name for parameters,
// Index for wildcards, and Children for optional groups.
type Segment struct {
	Kind SegmentKind

	// Text holds the verbatim path text of a SegmentLiteral, including any
	// separator characters adjacent to it in the pattern.
	Text string

	// Name holds the identifier of a SegmentParam, without the leading ':'.
	Name string

	// Index holds the 0-based ordinal of a SegmentWildcard in pattern order.
	// Wildcard values are carried positionally, so the ordinal identifies
	// which masked value the segment captures or emits.
	Index int

	// Children holds the nested sequence of a SegmentOptional.
	Children []Segment
}

// cloneSegments deep-copies a segment sequence so callers cannot mutate a
// compiled pattern's tree through the Segments accessor.
func cloneSegments(segs []Segment) []Segment {
	if segs == nil {
		return nil
	}
	out := make([]Segment, len(segs))
	for i, seg := range segs {
		out[i] = seg
		out[i].Children = cloneSegments(seg.Children)
	}
	return out
}

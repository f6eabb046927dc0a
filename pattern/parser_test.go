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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseSegments tests tokenization into segment trees.
func TestParseSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		want    []Segment
	}{
		{
			name:    "root",
			pattern: "/",
			want:    []Segment{{Kind: SegmentLiteral, Text: "/"}},
		},
		{
			name:    "static multi-component",
			pattern: "/api/v1/users",
			want:    []Segment{{Kind: SegmentLiteral, Text: "/api/v1/users"}},
		},
		{
			name:    "single parameter",
			pattern: "/users/:id",
			want: []Segment{
				{Kind: SegmentLiteral, Text: "/users/"},
				{Kind: SegmentParam, Name: "id"},
			},
		},
		{
			name:    "parameter between literals",
			pattern: "/users/:id/posts",
			want: []Segment{
				{Kind: SegmentLiteral, Text: "/users/"},
				{Kind: SegmentParam, Name: "id"},
				{Kind: SegmentLiteral, Text: "/posts"},
			},
		},
		{
			name:    "wildcards take ordinals in pattern order",
			pattern: "/a/*/b/*/c",
			want: []Segment{
				{Kind: SegmentLiteral, Text: "/a/"},
				{Kind: SegmentWildcard, Index: 0},
				{Kind: SegmentLiteral, Text: "/b/"},
				{Kind: SegmentWildcard, Index: 1},
				{Kind: SegmentLiteral, Text: "/c"},
			},
		},
		{
			name:    "component containing asterisk is literal",
			pattern: "/a/b*c",
			want:    []Segment{{Kind: SegmentLiteral, Text: "/a/b*c"}},
		},
		{
			name:    "colon mid-component is literal",
			pattern: "/a/b:c",
			want:    []Segment{{Kind: SegmentLiteral, Text: "/a/b:c"}},
		},
		{
			name:    "optional group",
			pattern: "/users/:id/(posts/:post/)",
			want: []Segment{
				{Kind: SegmentLiteral, Text: "/users/"},
				{Kind: SegmentParam, Name: "id"},
				{Kind: SegmentLiteral, Text: "/"},
				{Kind: SegmentOptional, Children: []Segment{
					{Kind: SegmentLiteral, Text: "posts/"},
					{Kind: SegmentParam, Name: "post"},
					{Kind: SegmentLiteral, Text: "/"},
				}},
			},
		},
		{
			name:    "group opening mid-sequence",
			pattern: "/a(/:b)/c",
			want: []Segment{
				{Kind: SegmentLiteral, Text: "/a"},
				{Kind: SegmentOptional, Children: []Segment{
					{Kind: SegmentLiteral, Text: "/"},
					{Kind: SegmentParam, Name: "b"},
				}},
				{Kind: SegmentLiteral, Text: "/c"},
			},
		},
		{
			name:    "nested and sibling groups",
			pattern: "/admin/(user/(edit/:id/)(album/:albumId/):session/)test",
			want: []Segment{
				{Kind: SegmentLiteral, Text: "/admin/"},
				{Kind: SegmentOptional, Children: []Segment{
					{Kind: SegmentLiteral, Text: "user/"},
					{Kind: SegmentOptional, Children: []Segment{
						{Kind: SegmentLiteral, Text: "edit/"},
						{Kind: SegmentParam, Name: "id"},
						{Kind: SegmentLiteral, Text: "/"},
					}},
					{Kind: SegmentOptional, Children: []Segment{
						{Kind: SegmentLiteral, Text: "album/"},
						{Kind: SegmentParam, Name: "albumId"},
						{Kind: SegmentLiteral, Text: "/"},
					}},
					{Kind: SegmentParam, Name: "session"},
					{Kind: SegmentLiteral, Text: "/"},
				}},
				{Kind: SegmentLiteral, Text: "test"},
			},
		},
		{
			name:    "empty group",
			pattern: "/a/()",
			want: []Segment{
				{Kind: SegmentLiteral, Text: "/a/"},
				{Kind: SegmentOptional},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := Parse(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Segments())
			assert.Equal(t, tt.pattern, p.String())
		})
	}
}

// TestParseErrors tests rejection of malformed patterns.
func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pattern    string
		opts       []Option
		wantErr    error
		wantOffset int
	}{
		{
			name:       "unclosed group",
			pattern:    "/a/(b",
			wantErr:    ErrUnbalancedParens,
			wantOffset: 3,
		},
		{
			name:       "unopened close",
			pattern:    "/a/)b",
			wantErr:    ErrUnbalancedParens,
			wantOffset: 3,
		},
		{
			name:       "innermost unclosed group reported",
			pattern:    "/a/(b/(c",
			wantErr:    ErrUnbalancedParens,
			wantOffset: 6,
		},
		{
			name:       "duplicate parameter",
			pattern:    "/a/:x/:x",
			wantErr:    ErrDuplicateParam,
			wantOffset: 6,
		},
		{
			name:       "duplicate parameter across group boundary",
			pattern:    "/a/(:x/):x",
			wantErr:    ErrDuplicateParam,
			wantOffset: 8,
		},
		{
			name:       "empty parameter name",
			pattern:    "/a/:/b",
			wantErr:    ErrEmptyParamName,
			wantOffset: 3,
		},
		{
			name:       "reserved parameter name",
			pattern:    "/a/:_masked",
			wantErr:    ErrReservedParam,
			wantOffset: 3,
		},
		{
			name:       "invalid utf-8",
			pattern:    "/a/\xff\xfe",
			wantErr:    ErrInvalidEncoding,
			wantOffset: 0,
		},
		{
			name:       "nesting beyond limit",
			pattern:    strings.Repeat("(", 64) + strings.Repeat(")", 64),
			wantErr:    ErrNestingTooDeep,
			wantOffset: 32,
		},
		{
			name:       "paired wildcard without trailing wildcard",
			pattern:    "/a/:b",
			opts:       []Option{WithPairedWildcard()},
			wantErr:    ErrTrailingWildcard,
			wantOffset: 5,
		},
		{
			name:       "paired wildcard with wildcard inside group",
			pattern:    "/a/(*)",
			opts:       []Option{WithPairedWildcard()},
			wantErr:    ErrTrailingWildcard,
			wantOffset: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := Parse(tt.pattern, tt.opts...)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tt.wantErr)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.pattern, perr.Pattern)
			assert.Equal(t, tt.wantOffset, perr.Offset)
		})
	}
}

// TestParseMetadata tests the pre-computed pattern metadata.
func TestParseMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pattern    string
		opts       []Option
		wantParams []string
		wantWild   int
		wantStatic bool
		wantPaired bool
	}{
		{
			name:       "static",
			pattern:    "/api/health",
			wantStatic: true,
		},
		{
			name:       "params in declaration order",
			pattern:    "/a/:z/:y/(:x)",
			wantParams: []string{"z", "y", "x"},
		},
		{
			name:     "wildcards counted",
			pattern:  "/a/*/b/*",
			wantWild: 2,
		},
		{
			name:       "paired",
			pattern:    "/kv/*",
			opts:       []Option{WithPairedWildcard()},
			wantWild:   1,
			wantPaired: true,
		},
		{
			name:    "literal-only group is not static",
			pattern: "/a/(b/)c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := Parse(tt.pattern, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantParams, p.Params())
			assert.Equal(t, tt.wantWild, p.Wildcards())
			assert.Equal(t, tt.wantStatic, p.Static())
			assert.Equal(t, tt.wantPaired, p.PairedWildcard())
		})
	}
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, MustParse("/users/:id"))
	assert.Panics(t, func() { MustParse("/users/(") })
}

func TestSegmentKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "literal", SegmentLiteral.String())
	assert.Equal(t, "param", SegmentParam.String())
	assert.Equal(t, "wildcard", SegmentWildcard.String())
	assert.Equal(t, "optional", SegmentOptional.String())
	assert.Equal(t, "unknown", SegmentKind(255).String())
}

// TestSegmentsImmutable tests that mutating the Segments result does not
// corrupt the compiled pattern.
func TestSegmentsImmutable(t *testing.T) {
	t.Parallel()

	p := MustParse("/users/:id")
	segs := p.Segments()
	segs[0].Text = "/corrupted/"
	segs[1].Name = "corrupted"

	params, ok := p.Match("/users/7")
	require.True(t, ok)
	v, ok := params.Get("id")
	require.True(t, ok)
	assert.Equal(t, "7", v)
}

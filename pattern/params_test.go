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
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParamsTriState tests the absent / null / value distinction.
func TestParamsTriState(t *testing.T) {
	t.Parallel()

	p := NewParams().Set("id", "7").SetNull("post")

	v, ok := p.Get("id")
	assert.True(t, ok)
	assert.Equal(t, "7", v)
	assert.True(t, p.Has("id"))
	assert.False(t, p.IsNull("id"))

	_, ok = p.Get("post")
	assert.False(t, ok)
	assert.True(t, p.Has("post"))
	assert.True(t, p.IsNull("post"))

	_, ok = p.Get("absent")
	assert.False(t, ok)
	assert.False(t, p.Has("absent"))
	assert.False(t, p.IsNull("absent"))

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []string{"id", "post"}, p.Names())
	assert.Equal(t, map[string]string{"id": "7"}, p.Map())
}

func TestParamsSetReplacesState(t *testing.T) {
	t.Parallel()

	p := NewParams().SetNull("id")
	assert.True(t, p.IsNull("id"))

	p.Set("id", "7")
	assert.False(t, p.IsNull("id"))
	v, ok := p.Get("id")
	assert.True(t, ok)
	assert.Equal(t, "7", v)

	p.SetNull("id")
	assert.True(t, p.IsNull("id"))
	assert.Equal(t, 1, p.Len())
}

func TestParamsReservedKey(t *testing.T) {
	t.Parallel()

	p := NewParams().Set(MaskedParam, "x").SetNull(MaskedParam)
	assert.Zero(t, p.Len())
	assert.False(t, p.Has(MaskedParam))

	p.AddMasked("a", "b")
	assert.Equal(t, []string{"a", "b"}, p.Masked())
}

func TestParamsMaskedCopy(t *testing.T) {
	t.Parallel()

	p := NewParams().AddMasked("a")
	m := p.Masked()
	m[0] = "corrupted"
	assert.Equal(t, []string{"a"}, p.Masked())
}

func TestParamsEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b *Params
		want bool
	}{
		{
			name: "nil equals empty",
			a:    nil,
			b:    NewParams(),
			want: true,
		},
		{
			name: "same values",
			a:    NewParams().Set("x", "1").AddMasked("m"),
			b:    NewParams().Set("x", "1").AddMasked("m"),
			want: true,
		},
		{
			name: "null is not a value",
			a:    NewParams().SetNull("x"),
			b:    NewParams().Set("x", ""),
			want: false,
		},
		{
			name: "absent is not null",
			a:    NewParams(),
			b:    NewParams().SetNull("x"),
			want: false,
		},
		{
			name: "masked order matters",
			a:    NewParams().AddMasked("a", "b"),
			b:    NewParams().AddMasked("b", "a"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

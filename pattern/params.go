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

import "sort"

// MaskedParam is the reserved key under which the ordered anonymous wildcard
// captures surface to integrations that flatten a Params into a plain map.
// The key cannot be set directly and cannot be forged from a matched path.
const MaskedParam = "_masked"

// paramValue is one named entry. null distinguishes an explicit null from a
// plain value; absence is the map miss itself.
type paramValue struct {
	value string
	null  bool
}

// Params carries named parameter values between matching and building.
//
// Every name is in exactly one of three states: absent, explicitly null, or
// holding a value. The distinction drives optional-group inclusion when
// building: a null is a deliberate "no value here", not a missing entry.
//
// Anonymous wildcard captures ride alongside the named entries as an ordered
// list, one element per wildcard occurrence, exposed through Masked.
//
// Params is not safe for concurrent mutation. Once fully populated it may be
// read from any number of goroutines.
type Params struct {
	values map[string]paramValue
	masked []string
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{}
}

// Set binds name to value, replacing any previous state. Setting the
// reserved MaskedParam key is a no-op; use AddMasked instead.
func (p *Params) Set(name, value string) *Params {
	if name == MaskedParam {
		return p
	}
	if p.values == nil {
		p.values = make(map[string]paramValue)
	}
	p.values[name] = paramValue{value: value}
	return p
}

// SetNull marks name as explicitly null, replacing any previous state.
// Setting the reserved MaskedParam key is a no-op.
func (p *Params) SetNull(name string) *Params {
	if name == MaskedParam {
		return p
	}
	if p.values == nil {
		p.values = make(map[string]paramValue)
	}
	p.values[name] = paramValue{null: true}
	return p
}

// Get returns the value bound to name. The second return is false when the
// name is absent or null.
func (p *Params) Get(name string) (string, bool) {
	v, ok := p.values[name]
	if !ok || v.null {
		return "", false
	}
	return v.value, true
}

// Has reports whether name is present at all, including explicit nulls.
func (p *Params) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// IsNull reports whether name is present and explicitly null.
func (p *Params) IsNull(name string) bool {
	v, ok := p.values[name]
	return ok && v.null
}

// Names returns all present names, nulls included, in sorted order.
func (p *Params) Names() []string {
	if len(p.values) == 0 {
		return nil
	}
	names := make([]string, 0, len(p.values))
	for name := range p.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of present names, nulls included.
func (p *Params) Len() int {
	return len(p.values)
}

// Map returns the named non-null entries as a plain map. The masked list is
// not included; integrations that need it flat should add Masked under the
// MaskedParam key themselves.
func (p *Params) Map() map[string]string {
	out := make(map[string]string, len(p.values))
	for name, v := range p.values {
		if v.null {
			continue
		}
		out[name] = v.value
	}
	return out
}

// Masked returns a copy of the ordered anonymous wildcard captures.
func (p *Params) Masked() []string {
	if p.masked == nil {
		return nil
	}
	out := make([]string, len(p.masked))
	copy(out, p.masked)
	return out
}

// AddMasked appends values to the ordered wildcard list.
func (p *Params) AddMasked(values ...string) *Params {
	p.masked = append(p.masked, values...)
	return p
}

// maskedAt returns the wildcard value at ordinal i, if one exists.
func (p *Params) maskedAt(i int) (string, bool) {
	if i < 0 || i >= len(p.masked) {
		return "", false
	}
	return p.masked[i], true
}

// Equal reports whether two parameter sets hold the same named states and
// the same masked list. A nil Params equals an empty one.
func (p *Params) Equal(o *Params) bool {
	if p == nil {
		p = NewParams()
	}
	if o == nil {
		o = NewParams()
	}
	if len(p.values) != len(o.values) || len(p.masked) != len(o.masked) {
		return false
	}
	for name, v := range p.values {
		ov, ok := o.values[name]
		if !ok || ov != v {
			return false
		}
	}
	for i, m := range p.masked {
		if o.masked[i] != m {
			return false
		}
	}
	return true
}

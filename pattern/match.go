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

import "strings"

// Match tests path against the pattern. On success it returns the captured
// parameters; a false second return is the normal negative result, never an
// error.
//
// Static patterns compare by string equality. Dynamic patterns run the
// compiled expression once and bind each participating capture group to its
// slot: parameters by name, wildcards appended to the masked list in pattern
// order. A group left empty by an absent optional binds nothing; every
// capture unit requires at least one character, so emptiness is unambiguous.
func (p *Pattern) Match(path string) (*Params, bool) {
	if p.static {
		if path == p.literal {
			return NewParams(), true
		}
		return nil, false
	}

	m := p.re.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}

	params := NewParams()
	for i, slot := range p.slots {
		val := m[i+1]
		if val == "" {
			continue
		}
		switch {
		case slot.rest:
			if !mergePairs(params, val) {
				return nil, false
			}
		case slot.wildcard:
			params.AddMasked(val)
		default:
			params.Set(slot.name, val)
		}
	}
	return params, true
}

// mergePairs consumes the remainder captured by a paired trailing wildcard
// two components at a time, binding each key to the value that follows it.
// An odd component count, an empty component, or an attempt to forge the
// reserved masked key makes the whole path a non-match.
func mergePairs(params *Params, rest string) bool {
	comps := strings.Split(rest, "/")
	if len(comps)%2 != 0 {
		return false
	}
	for i := 0; i < len(comps); i += 2 {
		key, val := comps[i], comps[i+1]
		if key == "" || val == "" || key == MaskedParam {
			return false
		}
		params.Set(key, val)
	}
	return true
}

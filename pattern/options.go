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

// parseConfig carries the per-call settings accepted by Parse.
type parseConfig struct {
	pairedWildcard bool
}

// Option configures a single Parse call.
type Option func(*parseConfig)

// WithPairedWildcard makes the pattern's trailing wildcard capture the
// remainder of the path as alternating key/value components instead of a
// single component. The remainder must contain an even number of components;
// an odd count is a non-match.
//
// The pattern must end with a top-level "*" segment, otherwise Parse returns
// ErrTrailingWildcard.
//
// Example:
//
//	p := pattern.MustParse("/files/*", pattern.WithPairedWildcard())
//
//	params, ok := p.Match("/files/region/eu/bucket/media")
//	// ok == true
//	// params.Get("region") == "eu", params.Get("bucket") == "media"
//
//	params, ok = p.Match("/files/region")
//	// ok == false: odd component count
func WithPairedWildcard() Option {
	return func(c *parseConfig) {
		c.pairedWildcard = true
	}
}

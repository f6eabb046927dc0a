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

// Package pattern implements bidirectional URL path patterns.
//
// A pattern is parsed and compiled once, then serves both directions of the
// routing problem: matching a concrete path into a set of named parameters,
// and building a concrete path back out of a set of named parameters.
//
// # Grammar
//
// Patterns are plain path strings with three special forms, applied per
// '/'-separated component:
//
//   - ":name" declares a named parameter capturing one path component
//   - "*" is an anonymous wildcard capturing one path component
//   - "(...)" wraps an optional group, which may nest and may open or close
//     mid-sequence; an optional group matches with or without its content
//
// Everything else is literal text, matched verbatim. Parameter names must be
// unique within one pattern; wildcards may repeat and are identified by
// position.
//
//	/users/:id
//	/files/*/versions/*
//	/admin/(user/(edit/:id/)(album/:albumId/):session/)test
//
// # Matching
//
//	p := pattern.MustParse("/users/:id/(posts/:post/)")
//
//	params, ok := p.Match("/users/7/posts/42/")
//	// ok == true, params.Get("id") == "7", params.Get("post") == "42"
//
//	params, ok = p.Match("/users/7/")
//	// ok == true, params.Get("id") == "7", "post" absent
//
// A failed match returns false; it is a normal negative result, not an
// error. Anonymous wildcard captures are carried in pattern order and read
// back through Params.Masked.
//
// # Building
//
// Build is the inverse direction. Optional groups are included only when
// every parameter and wildcard that is a direct child of the group has a
// value; an excluded group drops out entirely, nested content included:
//
//	p := pattern.MustParse("/users/:id/(posts/:post/)")
//
//	path, err := p.Build(pattern.NewParams().Set("id", "7"))
//	// path == "/users/7/"
//
//	path, err = p.Build(pattern.NewParams().Set("id", "7").Set("post", "42"))
//	// path == "/users/7/posts/42/"
//
// A parameter may also be explicitly null (Params.SetNull), which reads as
// "deliberately no value": it excludes optional groups exactly like an
// absent parameter, and it fails a required position exactly like an absent
// parameter.
//
// # Paired Wildcards
//
// With WithPairedWildcard, a trailing "*" captures the path remainder as
// alternating key/value components rather than a single component:
//
//	p := pattern.MustParse("/files/*", pattern.WithPairedWildcard())
//
//	params, ok := p.Match("/files/region/eu/bucket/media")
//	// params.Get("region") == "eu", params.Get("bucket") == "media"
//
// Building the same pattern appends every caller-supplied name the pattern
// does not bind as trailing pairs, in sorted name order.
//
// # Concurrency
//
// A Pattern is immutable after Parse and safe for concurrent use. A Params
// must not be mutated concurrently; once populated it may be read from any
// number of goroutines.
package pattern

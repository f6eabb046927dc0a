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

package metrics

import (
	"fmt"
	"regexp"
	"strings"
)

// routeFilter handles route exclusion logic for metrics.
// It supports exact route names, prefixes, and regex patterns.
type routeFilter struct {
	names    map[string]bool
	prefixes []string
	patterns []*regexp.Regexp
}

// newRouteFilter creates a new route filter.
func newRouteFilter() *routeFilter {
	return &routeFilter{
		names: make(map[string]bool),
	}
}

// addNames adds exact route names to exclude.
func (rf *routeFilter) addNames(names ...string) {
	for _, n := range names {
		rf.names[n] = true
	}
}

// addPrefixes adds route name prefixes to exclude.
func (rf *routeFilter) addPrefixes(prefixes ...string) {
	rf.prefixes = append(rf.prefixes, prefixes...)
}

// addPatterns adds compiled regex patterns to exclude.
func (rf *routeFilter) addPatterns(patterns ...*regexp.Regexp) {
	rf.patterns = append(rf.patterns, patterns...)
}

// shouldExclude returns true if the route should be excluded from metrics.
func (rf *routeFilter) shouldExclude(route string) bool {
	if rf == nil {
		return false
	}

	// Check exact names (O(1) lookup)
	if rf.names[route] {
		return true
	}

	// Check prefixes
	for _, prefix := range rf.prefixes {
		if strings.HasPrefix(route, prefix) {
			return true
		}
	}

	// Check patterns
	for _, pattern := range rf.patterns {
		if pattern.MatchString(route) {
			return true
		}
	}

	return false
}

// WithExcludeRoutes excludes the given route names from metrics collection.
// This is useful for high-frequency internal routes like health checks.
//
// Example:
//
//	recorder := metrics.MustNew(
//	    metrics.WithExcludeRoutes("health", "readiness"),
//	)
func WithExcludeRoutes(names ...string) Option {
	return func(r *Recorder) {
		if r.routeFilter == nil {
			r.routeFilter = newRouteFilter()
		}
		r.routeFilter.addNames(names...)
	}
}

// WithExcludePrefixes excludes route names with the given prefixes from
// metrics collection. This is useful for excluding entire route families
// like "debug." or "internal.".
//
// Example:
//
//	recorder := metrics.MustNew(
//	    metrics.WithExcludePrefixes("debug.", "internal."),
//	)
func WithExcludePrefixes(prefixes ...string) Option {
	return func(r *Recorder) {
		if r.routeFilter == nil {
			r.routeFilter = newRouteFilter()
		}
		r.routeFilter.addPrefixes(prefixes...)
	}
}

// WithExcludePatterns excludes route names matching the given regex patterns
// from metrics collection. The patterns are compiled once during configuration.
// Invalid regex patterns will cause New() to return an error.
//
// Example:
//
//	recorder := metrics.MustNew(
//	    metrics.WithExcludePatterns(`^admin\..*`, `^debug\..*`),
//	)
func WithExcludePatterns(patterns ...string) Option {
	return func(r *Recorder) {
		if r.routeFilter == nil {
			r.routeFilter = newRouteFilter()
		}
		for _, pattern := range patterns {
			compiled, err := regexp.Compile(pattern)
			if err != nil {
				// Store error to be returned during validation
				if r.validationErrors == nil {
					r.validationErrors = make([]error, 0, 1)
				}
				r.validationErrors = append(r.validationErrors,
					fmt.Errorf("invalid regex pattern for route exclusion %q: %w", pattern, err))
				continue
			}
			r.routeFilter.addPatterns(compiled)
		}
	}
}

// ShouldExcludeRoute returns true if the given route name should be excluded
// from metrics. Checks exact names, prefixes, and regex patterns.
func (r *Recorder) ShouldExcludeRoute(route string) bool {
	if r.routeFilter == nil {
		return false
	}
	return r.routeFilter.shouldExclude(route)
}

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

// Package routes provides bidirectional URL routing for Go.
//
// A Registry maps named URL patterns in both directions: Resolve turns a
// verb and concrete path into the matching route with its captured
// parameters, and URLFor turns a route name and parameters back into a
// concrete path. Both directions share one compiled pattern, so a path
// that matches always rebuilds and a built path always matches.
//
// # Key Features
//
//   - Pattern grammar with :name parameters, * wildcards, and nested
//     (...) optional groups
//   - Named routes resolved in registration order per verb
//   - Reverse routing: build concrete paths from route names
//   - Regular-expression parameter constraints with a fluent API
//   - Paired wildcards capturing trailing key/value pairs
//   - Declarative YAML route manifests
//   - Pluggable metrics recording and registration diagnostics
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "rivaas.dev/routes"
//	    "rivaas.dev/routes/pattern"
//	)
//
//	func main() {
//	    reg := routes.MustNew()
//	    reg.MustAdd("GET", "users.show", "/users/:id").WhereInt("id")
//
//	    if m, ok := reg.Resolve("GET", "/users/42"); ok {
//	        id, _ := m.Params.Get("id")
//	        fmt.Println(m.Route.Name(), id) // users.show 42
//	    }
//
//	    path := reg.MustURLFor("users.show", pattern.NewParams().Set("id", "7"))
//	    fmt.Println(path) // /users/7
//	}
//
// # Resolving
//
// Resolve scans the verb's routes in registration order and returns the
// first whose pattern matches the path and whose constraints accept the
// captured parameters. Order is the only priority rule, so register
// specific patterns before general ones:
//
//	reg.MustAdd("GET", "files.readme", "/files/README")
//	reg.MustAdd("GET", "files.any", "/files/:name")
//
// # Building URLs
//
// URLFor looks up a route by name and renders its pattern with the given
// parameters. Optional groups are included only when every parameter they
// need is present, so one route can render several URL shapes:
//
//	reg.MustAdd("GET", "docs", "/docs/(:lang/):page")
//	reg.MustURLFor("docs", pattern.NewParams().Set("page", "intro"))
//	// /docs/intro
//	reg.MustURLFor("docs", pattern.NewParams().Set("page", "intro").Set("lang", "fr"))
//	// /docs/fr/intro
//
// # Constraints
//
// Constraints restrict the values a parameter may take. The fluent Where
// methods panic on invalid input for static route tables; WithConstraint
// returns errors instead for routes assembled from external data:
//
//	reg.MustAdd("GET", "users.show", "/users/:id").WhereInt("id")
//	reg.Add("GET", "posts.show", "/posts/:slug",
//	    routes.WithConstraint("slug", `[a-z-]+`))
//
// A route whose constraints reject a path does not end the scan; later
// routes may still match.
//
// # Registration and Freezing
//
// Registration and resolution are separate phases. The first Resolve or
// URLFor freezes the registry; from then on lookups run lock-free and
// further Add calls fail with ErrRegistryFrozen. Call Freeze directly to
// end registration at a known point.
//
// # Observability
//
// WithRecorder hooks resolve and build outcomes into a metrics backend;
// the routes/metrics package provides an OpenTelemetry implementation.
// WithDiagnostics reports advisory registration events such as shadowed
// routes:
//
//	reg := routes.MustNew(
//	    routes.WithRecorder(rec),
//	    routes.WithDiagnostics(routes.DefaultDiagnosticHandler(slog.Default())),
//	)
//
// # Subpackages
//
//   - routes/pattern: the pattern grammar, matcher, and builder
//   - routes/metrics: OpenTelemetry metrics recording
//   - routes/manifest: YAML route manifests
package routes

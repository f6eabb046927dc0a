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

package routes_test

import (
	"fmt"

	"rivaas.dev/routes"
	"rivaas.dev/routes/pattern"
)

// ExampleNew demonstrates basic bidirectional routing.
func ExampleNew() {
	reg := routes.MustNew()
	reg.MustAdd("GET", "users.show", "/users/:id")

	m, ok := reg.Resolve("GET", "/users/42")
	fmt.Println(ok, m.Route.Name())

	id, _ := m.Params.Get("id")
	fmt.Println(id)

	// Output:
	// true users.show
	// 42
}

// ExampleRegistry_Resolve demonstrates that registration order decides
// between overlapping patterns.
func ExampleRegistry_Resolve() {
	reg := routes.MustNew()
	reg.MustAdd("GET", "files.readme", "/files/README")
	reg.MustAdd("GET", "files.any", "/files/:name")

	m, _ := reg.Resolve("GET", "/files/README")
	fmt.Println(m.Route.Name())

	m, _ = reg.Resolve("GET", "/files/notes.txt")
	fmt.Println(m.Route.Name())

	// Output:
	// files.readme
	// files.any
}

// ExampleRegistry_URLFor demonstrates reverse routing with optional groups:
// one route renders several URL shapes depending on the parameters given.
func ExampleRegistry_URLFor() {
	reg := routes.MustNew()
	reg.MustAdd("GET", "docs", "/docs/(:lang/):page")

	fmt.Println(reg.MustURLFor("docs", pattern.NewParams().Set("page", "intro")))
	fmt.Println(reg.MustURLFor("docs", pattern.NewParams().Set("page", "intro").Set("lang", "fr")))

	// Output:
	// /docs/intro
	// /docs/fr/intro
}

// ExampleRoute_Where demonstrates parameter constraints.
func ExampleRoute_Where() {
	reg := routes.MustNew()
	reg.MustAdd("GET", "users.show", "/users/:id").WhereInt("id")

	_, ok := reg.Resolve("GET", "/users/42")
	fmt.Println(ok)

	_, ok = reg.Resolve("GET", "/users/alice")
	fmt.Println(ok)

	// Output:
	// true
	// false
}

// ExampleWithPairedWildcard demonstrates trailing key/value capture and its
// reverse: extra parameters render back into the wildcard.
func ExampleWithPairedWildcard() {
	reg := routes.MustNew()
	reg.MustAdd("GET", "files.browse", "/files/*", routes.WithPairedWildcard())

	m, _ := reg.Resolve("GET", "/files/region/eu/bucket/media")
	region, _ := m.Params.Get("region")
	bucket, _ := m.Params.Get("bucket")
	fmt.Println(region, bucket)

	path, _ := reg.URLFor("files.browse", m.Params)
	fmt.Println(path)

	// Output:
	// eu media
	// /files/bucket/media/region/eu
}

// ExampleRegistry_Routes demonstrates route introspection.
func ExampleRegistry_Routes() {
	reg := routes.MustNew()
	reg.MustAdd("GET", "home", "/")
	reg.MustAdd("POST", "users.create", "/users")

	for _, rt := range reg.Routes() {
		fmt.Println(rt)
	}

	// Output:
	// GET / (home)
	// POST /users (users.create)
}

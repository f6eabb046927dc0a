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

// Package manifest loads declarative YAML route tables into a route registry.
//
// A manifest keeps the route table out of code, so operators can review and
// change URL shapes without a rebuild while handlers stay bound by name.
//
// # Manifest Format
//
//	version: 1
//	routes:
//	  - name: users.show
//	    method: GET
//	    pattern: /users/:id
//	    constraints:
//	      id: '\d+'
//	    handlers: [auth, users]
//	  - name: files.browse
//	    method: GET
//	    pattern: /files/:bucket/*
//	    paired_wildcard: true
//
// Decoding is strict: unknown fields and duplicate keys are rejected, which
// catches typos like "pattrn" at load time.
//
// # Environment Substitution
//
// Pattern strings (and every other value) may reference environment
// variables with ${VAR} or ${VAR:-default}; "$$" escapes a literal dollar:
//
//	routes:
//	  - name: docs.page
//	    method: GET
//	    pattern: ${DOCS_PREFIX:-/docs}/(:lang/):page
//
// # Applying
//
//	file, err := manifest.LoadFile("routes.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reg := routes.MustNew()
//	err = file.Apply(reg, map[string][]routes.Handler{
//	    "auth":  {authenticate},
//	    "users": {showUser},
//	})
//
// Apply registers routes in manifest order, so earlier entries win Resolve
// ties exactly as hand-registered routes would.
package manifest

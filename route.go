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

package routes

import (
	"fmt"
	"regexp"
	"strings"

	"rivaas.dev/routes/pattern"
)

// Handler is an opaque reference to a middleware or endpoint implementation.
// The registry stores and returns handler chains without interpreting them;
// the dispatching integration defines the concrete contract and invokes the
// chain in registration order.
type Handler = any

// constraint is one compiled parameter restriction.
type constraint struct {
	param string
	expr  string
	re    *regexp.Regexp
}

// Route is one named registration: a verb, a compiled pattern, the handler
// chain, and any parameter constraints.
//
// Routes are created through Registry.Add and its verb shorthands. The
// fluent Where methods may refine a route until the registry freezes; after
// that the route is immutable and safe for concurrent use.
type Route struct {
	method      string
	name        string
	pattern     *pattern.Pattern
	handlers    []Handler
	constraints []constraint
	reg         *Registry
}

// Name returns the unique route name.
func (rt *Route) Name() string {
	return rt.name
}

// Method returns the normalized (upper-case) verb.
func (rt *Route) Method() string {
	return rt.method
}

// Pattern returns the compiled pattern.
func (rt *Route) Pattern() *pattern.Pattern {
	return rt.pattern
}

// Handlers returns the ordered handler chain.
func (rt *Route) Handlers() []Handler {
	if rt.handlers == nil {
		return nil
	}
	out := make([]Handler, len(rt.handlers))
	copy(out, rt.handlers)
	return out
}

// String describes the route for error messages and logs.
func (rt *Route) String() string {
	return fmt.Sprintf("%s %s (%s)", rt.method, rt.pattern, rt.name)
}

// Build renders a concrete path for the route from the given parameters.
// It is the single-route form of Registry.URLFor.
func (rt *Route) Build(params *pattern.Params) (string, error) {
	return rt.pattern.Build(params)
}

// Where adds a constraint to a route parameter using a regular expression.
// The expression is anchored to the whole parameter value and pre-compiled
// for validation during resolving. A route only wins a Resolve when every
// constrained parameter that captured a value passes; parameters left absent
// by an excluded optional group are not checked.
//
// This method panics on an invalid expression, on an unknown parameter name,
// and after the registry has been frozen. The panic is intentional for early
// error detection during application startup; routes assembled from
// configuration should use WithConstraint, which reports errors instead.
//
// Common patterns:
//   - Numeric: `\d+` (one or more digits)
//   - Alpha: `[a-zA-Z]+` (letters only)
//   - Slug: `[a-z0-9-]+`
//
// Example:
//
//	reg.MustAdd("GET", "users.show", "/users/:id").Where("id", `\d+`)
func (rt *Route) Where(param, expr string) *Route {
	if rt.reg.Frozen() {
		panic("cannot add constraints after registry is frozen")
	}
	c, err := compileConstraint(rt.pattern, param, expr)
	if err != nil {
		panic(fmt.Sprintf("routes: %v", err))
	}
	rt.constraints = append(rt.constraints, c)
	return rt
}

// WhereInt constrains the parameter to decimal digits.
//
// Example:
//
//	reg.MustAdd("GET", "users.show", "/users/:id").WhereInt("id")
func (rt *Route) WhereInt(param string) *Route {
	return rt.Where(param, `\d+`)
}

// WhereUUID constrains the parameter to the canonical UUID text form.
//
// Example:
//
//	reg.MustAdd("GET", "entities.show", "/entities/:uuid").WhereUUID("uuid")
func (rt *Route) WhereUUID(param string) *Route {
	return rt.Where(param, `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
}

// WhereIn constrains the parameter to an explicit value set.
//
// Example:
//
//	reg.MustAdd("GET", "reports.show", "/reports/:format").
//	    WhereIn("format", "csv", "json", "pdf")
func (rt *Route) WhereIn(param string, values ...string) *Route {
	escaped := make([]string, 0, len(values))
	for _, v := range values {
		escaped = append(escaped, regexp.QuoteMeta(v))
	}
	return rt.Where(param, strings.Join(escaped, "|"))
}

// checkConstraints reports whether every constrained parameter that captured
// a value passes its expression.
func (rt *Route) checkConstraints(params *pattern.Params) bool {
	for _, c := range rt.constraints {
		v, ok := params.Get(c.param)
		if !ok {
			continue
		}
		if !c.re.MatchString(v) {
			return false
		}
	}
	return true
}

// compileConstraint anchors and compiles expr against the whole parameter
// value, validating that the pattern declares the parameter at all.
func compileConstraint(p *pattern.Pattern, param, expr string) (constraint, error) {
	if !p.HasParam(param) {
		return constraint{}, fmt.Errorf("%w: %s", ErrUnknownParam, param)
	}
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return constraint{}, fmt.Errorf("%w: %s: %v", ErrInvalidConstraint, expr, err)
	}
	return constraint{param: param, expr: expr, re: re}, nil
}

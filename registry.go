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
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"rivaas.dev/routes/pattern"
)

// Diagnostic thresholds. Routes beyond these are legal but worth flagging.
const (
	maxHealthyParams = 8
	maxHealthyDepth  = 4
)

// Match is the result of a successful Resolve: the winning route and the
// parameters its pattern captured from the path.
type Match struct {
	Route  *Route
	Params *pattern.Params
}

// Registry holds named routes and serves both routing directions: resolving
// concrete paths to routes and building concrete paths from route names.
//
// A Registry has two phases. During registration, Add and the verb
// shorthands may be called from any goroutine. Freeze ends registration;
// afterwards the registry is immutable and Resolve, URLFor, and the
// introspection methods run lock-free. Resolve and URLFor freeze the
// registry implicitly on first use.
type Registry struct {
	// mu guards all registration-phase mutation.
	mu sync.Mutex

	frozen     atomic.Bool
	freezeOnce sync.Once

	// names indexes routes by unique name for building.
	names map[string]*Route

	// byMethod keeps per-verb registration order; the first matching route
	// in a verb's list wins a Resolve.
	byMethod map[string][]*Route

	// order is the global registration order, for introspection.
	order []*Route

	recorder Recorder
	diag     DiagnosticHandler

	// nilOption records a constructor option that received a nil
	// implementation, reported by validate.
	nilOption string
}

// New creates a registry with the given options.
//
// Example:
//
//	reg, err := routes.New(
//	    routes.WithDiagnostics(routes.DefaultDiagnosticHandler(slog.Default())),
//	)
func New(opts ...RegistryOption) (*Registry, error) {
	r := &Registry{
		names:    make(map[string]*Route),
		byMethod: make(map[string][]*Route),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNew is like New but panics on error. It simplifies initialization
// when options are known to be valid.
func MustNew(opts ...RegistryOption) *Registry {
	r, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("routes.MustNew: %v", err))
	}
	return r
}

// validate checks the configuration assembled by the options.
func (r *Registry) validate() error {
	if r.nilOption != "" {
		return fmt.Errorf("%w: %s", ErrNilOption, r.nilOption)
	}
	return nil
}

// Add registers a route under a unique name. The verb is case-insensitive.
// The pattern is parsed and compiled once, here; parse errors surface as
// *pattern.ParseError values.
//
// Routes resolve in registration order per verb: the first registered
// pattern that matches a path wins. Names are unique across all verbs.
//
// Example:
//
//	rt, err := reg.Add("GET", "users.show", "/users/:id",
//	    routes.WithHandlers(showUser),
//	    routes.WithConstraint("id", `\d+`))
func (r *Registry) Add(method, name, raw string, opts ...RouteOption) (*Route, error) {
	var cfg routeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var popts []pattern.Option
	if cfg.paired {
		popts = append(popts, pattern.WithPairedWildcard())
	}
	p, err := pattern.Parse(raw, popts...)
	if err != nil {
		return nil, err
	}

	rt := &Route{
		method:   strings.ToUpper(method),
		name:     name,
		pattern:  p,
		handlers: cfg.handlers,
		reg:      r,
	}
	for _, spec := range cfg.constraints {
		c, err := compileConstraint(p, spec.param, spec.expr)
		if err != nil {
			return nil, err
		}
		rt.constraints = append(rt.constraints, c)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return nil, fmt.Errorf("%w: cannot add route %q", ErrRegistryFrozen, name)
	}
	if existing, ok := r.names[name]; ok {
		return nil, fmt.Errorf("%w: %s (existing: %s %s, new: %s %s)",
			ErrDuplicateRouteName, name,
			existing.method, existing.pattern, rt.method, rt.pattern)
	}

	r.names[name] = rt
	r.byMethod[rt.method] = append(r.byMethod[rt.method], rt)
	r.order = append(r.order, rt)

	r.emitRegistrationDiagnostics(rt)
	return rt, nil
}

// MustAdd is like Add but panics on error. It suits static route tables
// declared at startup.
func (r *Registry) MustAdd(method, name, raw string, opts ...RouteOption) *Route {
	rt, err := r.Add(method, name, raw, opts...)
	if err != nil {
		panic(fmt.Sprintf("routes.MustAdd: %v", err))
	}
	return rt
}

// Freeze ends the registration phase. The first call wins; later calls are
// no-ops. Resolve and URLFor freeze the registry implicitly, so calling
// Freeze directly is only needed to fail fast on late registrations.
func (r *Registry) Freeze() {
	r.freezeOnce.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.frozen.Store(true)
	})
}

// Frozen reports whether registration has ended.
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

// Resolve maps a verb and concrete path to the first matching route, in
// per-verb registration order. A route whose constraints reject the captured
// parameters is skipped and the scan continues. The false return is the
// normal negative result, never an error.
//
// Resolve freezes the registry on first use.
func (r *Registry) Resolve(method, path string) (*Match, bool) {
	r.Freeze()
	start := time.Now()
	verb := strings.ToUpper(method)

	for _, rt := range r.byMethod[verb] {
		params, ok := rt.pattern.Match(path)
		if !ok {
			continue
		}
		if !rt.checkConstraints(params) {
			continue
		}
		if r.recorder != nil {
			r.recorder.RecordResolve(verb, rt.name, true, time.Since(start))
		}
		return &Match{Route: rt, Params: params}, true
	}

	if r.recorder != nil {
		r.recorder.RecordResolve(verb, "", false, time.Since(start))
	}
	return nil, false
}

// URLFor builds a concrete path for the named route. Unknown names return
// ErrRouteNotFound; building errors surface unchanged from the pattern
// package.
//
// URLFor freezes the registry on first use.
func (r *Registry) URLFor(name string, params *pattern.Params) (string, error) {
	r.Freeze()

	rt, ok := r.names[name]
	if !ok {
		if r.recorder != nil {
			r.recorder.RecordBuild(name, false)
		}
		return "", fmt.Errorf("%w: %s", ErrRouteNotFound, name)
	}

	path, err := rt.pattern.Build(params)
	if r.recorder != nil {
		r.recorder.RecordBuild(name, err == nil)
	}
	return path, err
}

// MustURLFor is like URLFor but panics on error. Use only for routes and
// parameters known to be valid.
func (r *Registry) MustURLFor(name string, params *pattern.Params) string {
	path, err := r.URLFor(name, params)
	if err != nil {
		panic(fmt.Sprintf("routes.MustURLFor: %v", err))
	}
	return path
}

// Lookup returns the route registered under name.
func (r *Registry) Lookup(name string) (*Route, bool) {
	if !r.frozen.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	rt, ok := r.names[name]
	return rt, ok
}

// Routes returns every route in global registration order, which is also
// per-verb match priority.
func (r *Registry) Routes() []*Route {
	if !r.frozen.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	out := make([]*Route, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered routes.
func (r *Registry) Len() int {
	if !r.frozen.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	return len(r.order)
}

// emitRegistrationDiagnostics reports advisory events for a just-registered
// route. Caller holds mu.
func (r *Registry) emitRegistrationDiagnostics(rt *Route) {
	if r.diag == nil {
		return
	}

	r.diag.OnDiagnostic(DiagnosticEvent{
		Kind:    DiagRouteRegistered,
		Message: "route registered",
		Fields: map[string]any{
			"name":    rt.name,
			"method":  rt.method,
			"pattern": rt.pattern.String(),
		},
	})

	if n := len(rt.pattern.Params()); n > maxHealthyParams {
		r.diag.OnDiagnostic(DiagnosticEvent{
			Kind:    DiagHighParamCount,
			Message: "route declares an unusually high number of parameters",
			Fields:  map[string]any{"name": rt.name, "params": n},
		})
	}

	if d := segmentDepth(rt.pattern.Segments()); d > maxHealthyDepth {
		r.diag.OnDiagnostic(DiagnosticEvent{
			Kind:    DiagDeepNesting,
			Message: "route optional groups nest unusually deeply",
			Fields:  map[string]any{"name": rt.name, "depth": d},
		})
	}

	for _, earlier := range r.byMethod[rt.method] {
		if earlier == rt {
			break
		}
		if earlier.pattern.String() == rt.pattern.String() {
			r.diag.OnDiagnostic(DiagnosticEvent{
				Kind:    DiagShadowedRoute,
				Message: "route is shadowed by an earlier identical pattern",
				Fields:  map[string]any{"name": rt.name, "shadowed_by": earlier.name},
			})
			break
		}
	}
}

// segmentDepth returns the deepest optional-group nesting in a tree.
func segmentDepth(segs []pattern.Segment) int {
	depth := 0
	for _, seg := range segs {
		if seg.Kind != pattern.SegmentOptional {
			continue
		}
		if d := 1 + segmentDepth(seg.Children); d > depth {
			depth = d
		}
	}
	return depth
}

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

// RegistryOption configures a Registry during construction.
type RegistryOption func(*Registry)

// WithRecorder attaches an observability recorder. The registry reports
// every Resolve and URLFor through it.
//
// Example with the metrics subpackage:
//
//	rec, err := metrics.New(metrics.WithPrometheus(":9090", "/metrics"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg := routes.MustNew(routes.WithRecorder(rec))
//
// Passing nil makes New return ErrNilOption.
func WithRecorder(rec Recorder) RegistryOption {
	return func(r *Registry) {
		if rec == nil {
			r.nilOption = "WithRecorder"
			return
		}
		r.recorder = rec
	}
}

// WithDiagnostics attaches a handler for registration-time advisory events.
// Diagnostics never affect registration outcomes.
//
// Example:
//
//	reg := routes.MustNew(
//	    routes.WithDiagnostics(routes.DefaultDiagnosticHandler(slog.Default())),
//	)
//
// Passing nil makes New return ErrNilOption.
func WithDiagnostics(h DiagnosticHandler) RegistryOption {
	return func(r *Registry) {
		if h == nil {
			r.nilOption = "WithDiagnostics"
			return
		}
		r.diag = h
	}
}

// routeConfig carries the per-route settings accepted by Add.
type routeConfig struct {
	handlers    []Handler
	paired      bool
	constraints []constraintSpec
}

type constraintSpec struct {
	param string
	expr  string
}

// RouteOption configures a single route at registration time.
type RouteOption func(*routeConfig)

// WithHandlers attaches the ordered handler chain invoked for the route.
// Handlers are opaque to the registry; the dispatching integration defines
// their contract and calls them in the order given.
//
// Example:
//
//	reg.MustAdd("GET", "users.show", "/users/:id",
//	    routes.WithHandlers(authenticate, showUser))
func WithHandlers(handlers ...Handler) RouteOption {
	return func(c *routeConfig) {
		c.handlers = append(c.handlers, handlers...)
	}
}

// WithPairedWildcard makes the route's trailing wildcard capture the path
// remainder as alternating key/value components. The pattern must end with a
// top-level "*" segment; Add returns the pattern package's
// ErrTrailingWildcard otherwise.
//
// Example:
//
//	reg.MustAdd("GET", "files.browse", "/files/*",
//	    routes.WithPairedWildcard())
//
//	m, ok := reg.Resolve("GET", "/files/region/eu/bucket/media")
//	// m.Params.Get("region") == "eu"
func WithPairedWildcard() RouteOption {
	return func(c *routeConfig) {
		c.paired = true
	}
}

// WithConstraint restricts a named parameter to values matching expr, a
// regular expression anchored to the whole value. A route only wins a
// Resolve when every constrained parameter that captured a value passes.
//
// Unlike the fluent Route.Where, an invalid expression surfaces as an
// ErrInvalidConstraint from Add rather than a panic, which suits routes
// assembled from configuration.
//
// Example:
//
//	reg.Add("GET", "users.show", "/users/:id",
//	    routes.WithConstraint("id", `\d+`))
func WithConstraint(param, expr string) RouteOption {
	return func(c *routeConfig) {
		c.constraints = append(c.constraints, constraintSpec{param: param, expr: expr})
	}
}

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

import "log/slog"

// DiagnosticEvent represents a registry diagnostic or anomaly.
// These are informational events that may indicate configuration issues.
//
// Diagnostic events are optional - the registry functions correctly whether
// they are collected or not. They provide visibility into edge cases for
// observability systems.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagRouteRegistered is emitted for every successful registration.
	DiagRouteRegistered DiagnosticKind = "route_registered"

	// DiagHighParamCount flags a route whose pattern declares an unusually
	// high number of parameters.
	DiagHighParamCount DiagnosticKind = "route_param_count_high"

	// DiagDeepNesting flags a route whose optional groups nest unusually
	// deeply.
	DiagDeepNesting DiagnosticKind = "route_group_nesting_deep"

	// DiagShadowedRoute flags a route registered behind an earlier route on
	// the same verb with an identical pattern; the later route can never win.
	DiagShadowedRoute DiagnosticKind = "route_shadowed"
)

// DiagnosticHandler receives diagnostic events from a registry.
// Implementations may log, emit metrics, or ignore them.
//
// This interface is optional - if not provided, diagnostics are silently
// dropped. The registry's behavior is unchanged whether diagnostics are
// collected or not.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := routes.DiagnosticHandlerFunc(func(e routes.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	reg := routes.MustNew(routes.WithDiagnostics(handler))
//
// Example with metrics:
//
//	handler := routes.DiagnosticHandlerFunc(func(e routes.DiagnosticEvent) {
//	    counter.Increment("routes.diagnostics", "kind", string(e.Kind))
//	})
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}

// DefaultDiagnosticHandler returns a DiagnosticHandler that logs events to
// the provided slog.Logger: registrations at debug level, everything else as
// warnings.
//
// If logger is nil, returns a handler that discards all events.
func DefaultDiagnosticHandler(logger *slog.Logger) DiagnosticHandler {
	if logger == nil {
		return DiagnosticHandlerFunc(func(DiagnosticEvent) {})
	}

	return DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		args := make([]any, 0, 2+2*len(e.Fields))
		args = append(args, "kind", string(e.Kind))
		for k, v := range e.Fields {
			args = append(args, k, v)
		}
		if e.Kind == DiagRouteRegistered {
			logger.Debug(e.Message, args...)
			return
		}
		logger.Warn(e.Message, args...)
	})
}

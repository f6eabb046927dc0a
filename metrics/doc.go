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

// Package metrics provides OpenTelemetry-based metrics collection for route
// registries. It supports multiple exporters (Prometheus, OTLP, stdout) and
// plugs into a registry as its [routes.Recorder].
//
// # Basic Usage
//
//	recorder := metrics.MustNew(
//	    metrics.WithPrometheus(":9090", "/metrics"),
//	    metrics.WithServiceName("my-service"),
//	)
//	defer recorder.Shutdown(context.Background())
//
//	reg := routes.MustNew(routes.WithRecorder(recorder))
//	reg.MustAdd("GET", "users.show", "/users/:id")
//
//	// Every Resolve and URLFor call is now measured.
//	reg.Resolve("GET", "/users/42")
//
// # Instruments
//
// Three instruments cover the registry surface:
//   - routes_resolve_total: counter of resolve calls, labeled by method,
//     route, and outcome ("match" or "miss")
//   - routes_resolve_duration_seconds: histogram of resolve latency
//   - routes_build_total: counter of reverse builds, labeled by route and
//     outcome ("ok" or "error")
//
// # Thread Safety
//
// All [Recorder] methods are safe for concurrent use.
//
// # Global State
//
// By default, this package does NOT set the global OpenTelemetry meter provider.
// Use [WithGlobalMeterProvider] if you want global registration.
// This allows multiple [Recorder] instances to coexist in the same process.
//
// # Providers
//
// Three providers are supported:
//   - [PrometheusProvider] (default): Exposes metrics via HTTP endpoint
//   - [OTLPProvider]: Sends metrics to OTLP collector
//   - [StdoutProvider]: Prints metrics to stdout (for development/testing)
//
// # Route Filtering
//
// High-frequency internal routes can be kept out of the instruments with
// [WithExcludeRoutes], [WithExcludePrefixes], and [WithExcludePatterns]:
//
//	recorder := metrics.MustNew(
//	    metrics.WithExcludeRoutes("health", "readiness"),
//	    metrics.WithExcludePrefixes("debug."),
//	)
package metrics

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

import "time"

// Recorder receives resolve and build observations from a Registry.
// Implementations typically forward to a metrics system; the metrics
// subpackage provides an OpenTelemetry-backed implementation with
// Prometheus, OTLP, and stdout exporters.
//
// The registry calls the hooks on its hot paths, so implementations should
// be cheap and must never block.
//
// Thread safety: all methods must be safe for concurrent use.
type Recorder interface {
	// RecordResolve is called after every Resolve with the normalized verb,
	// the winning route name (empty when nothing matched), whether a route
	// matched, and the elapsed scan time.
	RecordResolve(method, route string, matched bool, elapsed time.Duration)

	// RecordBuild is called after every URLFor with the requested route name
	// and whether building produced a path.
	RecordBuild(route string, ok bool)
}

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
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"rivaas.dev/routes"
)

// Recorder satisfies the registry's observability contract.
var _ routes.Recorder = (*Recorder)(nil)

// Outcome label values for routing instruments.
const (
	outcomeMatch = "match"
	outcomeMiss  = "miss"
	outcomeOK    = "ok"
	outcomeError = "error"
)

// RecordResolve records one registry resolve: a counter increment and a
// duration observation, labeled with the verb and whether a route matched.
// The registry calls this on its hot path, so the method allocates only the
// attribute set.
func (r *Recorder) RecordResolve(method, route string, matched bool, elapsed time.Duration) {
	if !r.enabled {
		return
	}

	// Excluded routes are dropped entirely; misses carry no route name and
	// are always recorded.
	if route != "" && r.routeFilter.shouldExclude(route) {
		return
	}

	outcome := outcomeMiss
	if matched {
		outcome = outcomeMatch
	}

	attrs := make([]attribute.KeyValue, 4, 5)
	attrs[0] = r.serviceNameAttr
	attrs[1] = r.serviceVersionAttr
	attrs[2] = attribute.String("method", method)
	attrs[3] = attribute.String("outcome", outcome)
	if route != "" {
		attrs = append(attrs, attribute.String("route", route))
	}

	ctx := context.Background()
	set := metric.WithAttributes(attrs...)

	r.resolveCount.Add(ctx, 1, set)
	r.resolveDuration.Record(ctx, elapsed.Seconds(), set)
}

// RecordBuild records one reverse build by route name and outcome.
func (r *Recorder) RecordBuild(route string, ok bool) {
	if !r.enabled {
		return
	}

	if r.routeFilter.shouldExclude(route) {
		return
	}

	outcome := outcomeError
	if ok {
		outcome = outcomeOK
	}

	attrs := []attribute.KeyValue{
		r.serviceNameAttr,
		r.serviceVersionAttr,
		attribute.String("route", route),
		attribute.String("outcome", outcome),
	}

	r.buildCount.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}

// initializeInstruments creates the routing metric instruments.
func (r *Recorder) initializeInstruments() error {
	var err error

	// Resolve count counter
	r.resolveCount, err = r.meter.Int64Counter(
		"routes_resolve_total",
		metric.WithDescription("Total number of route resolutions"),
	)
	if err != nil {
		return fmt.Errorf("failed to create resolve counter: %w", err)
	}

	// Resolve duration histogram with configurable buckets
	r.resolveDuration, err = r.meter.Float64Histogram(
		"routes_resolve_duration_seconds",
		metric.WithDescription("Duration of route resolutions in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(r.durationBuckets...),
	)
	if err != nil {
		return fmt.Errorf("failed to create resolve duration histogram: %w", err)
	}

	// Build count counter
	r.buildCount, err = r.meter.Int64Counter(
		"routes_build_total",
		metric.WithDescription("Total number of reverse route builds"),
	)
	if err != nil {
		return fmt.Errorf("failed to create build counter: %w", err)
	}

	return nil
}

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
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDiagnostics collects every emitted event for inspection.
type captureDiagnostics struct {
	events []DiagnosticEvent
}

func (c *captureDiagnostics) OnDiagnostic(e DiagnosticEvent) {
	c.events = append(c.events, e)
}

func (c *captureDiagnostics) kinds() []DiagnosticKind {
	out := make([]DiagnosticKind, 0, len(c.events))
	for _, e := range c.events {
		out = append(out, e.Kind)
	}
	return out
}

func TestDiagnosticsRouteRegistered(t *testing.T) {
	t.Parallel()

	capture := &captureDiagnostics{}
	reg := MustNew(WithDiagnostics(capture))

	reg.MustAdd("GET", "users.show", "/users/:id")

	require.Len(t, capture.events, 1)
	e := capture.events[0]
	assert.Equal(t, DiagRouteRegistered, e.Kind)
	assert.Equal(t, "users.show", e.Fields["name"])
	assert.Equal(t, "GET", e.Fields["method"])
	assert.Equal(t, "/users/:id", e.Fields["pattern"])
}

func TestDiagnosticsHighParamCount(t *testing.T) {
	t.Parallel()

	capture := &captureDiagnostics{}
	reg := MustNew(WithDiagnostics(capture))

	// Nine parameters crosses the advisory threshold.
	reg.MustAdd("GET", "wide", "/a/:p1/:p2/:p3/:p4/:p5/:p6/:p7/:p8/:p9")

	require.Contains(t, capture.kinds(), DiagHighParamCount)

	// Eight does not.
	capture.events = nil
	reg.MustAdd("GET", "narrow", "/a/:p1/:p2/:p3/:p4/:p5/:p6/:p7/:p8")
	assert.NotContains(t, capture.kinds(), DiagHighParamCount)
}

func TestDiagnosticsDeepNesting(t *testing.T) {
	t.Parallel()

	capture := &captureDiagnostics{}
	reg := MustNew(WithDiagnostics(capture))

	// Five nested groups cross the advisory threshold.
	reg.MustAdd("GET", "deep", "/a/(((((:v/)))))")
	require.Contains(t, capture.kinds(), DiagDeepNesting)

	capture.events = nil
	reg.MustAdd("GET", "shallow", "/a/(:v/)b")
	assert.NotContains(t, capture.kinds(), DiagDeepNesting)
}

func TestDiagnosticsShadowedRoute(t *testing.T) {
	t.Parallel()

	capture := &captureDiagnostics{}
	reg := MustNew(WithDiagnostics(capture))

	reg.MustAdd("GET", "first", "/users/:id")
	reg.MustAdd("POST", "other.verb", "/users/:id")

	// A different verb does not shadow.
	assert.NotContains(t, capture.kinds(), DiagShadowedRoute)

	reg.MustAdd("GET", "second", "/users/:id")
	require.Contains(t, capture.kinds(), DiagShadowedRoute)

	last := capture.events[len(capture.events)-1]
	assert.Equal(t, DiagShadowedRoute, last.Kind)
	assert.Equal(t, "second", last.Fields["name"])
	assert.Equal(t, "first", last.Fields["shadowed_by"])
}

func TestDiagnosticHandlerFunc(t *testing.T) {
	t.Parallel()

	var got DiagnosticEvent
	h := DiagnosticHandlerFunc(func(e DiagnosticEvent) { got = e })

	h.OnDiagnostic(DiagnosticEvent{Kind: DiagShadowedRoute, Message: "m"})
	assert.Equal(t, DiagShadowedRoute, got.Kind)
	assert.Equal(t, "m", got.Message)
}

func TestDefaultDiagnosticHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := DefaultDiagnosticHandler(logger)

	h.OnDiagnostic(DiagnosticEvent{
		Kind:    DiagRouteRegistered,
		Message: "route registered",
		Fields:  map[string]any{"name": "users.show"},
	})
	h.OnDiagnostic(DiagnosticEvent{
		Kind:    DiagShadowedRoute,
		Message: "route is shadowed by an earlier identical pattern",
		Fields:  map[string]any{"name": "second"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "level=DEBUG")
	assert.Contains(t, lines[0], "route registered")
	assert.Contains(t, lines[0], "kind=route_registered")
	assert.Contains(t, lines[0], "name=users.show")

	assert.Contains(t, lines[1], "level=WARN")
	assert.Contains(t, lines[1], "kind=route_shadowed")
}

func TestDefaultDiagnosticHandlerNilLogger(t *testing.T) {
	t.Parallel()

	h := DefaultDiagnosticHandler(nil)
	require.NotNil(t, h)

	assert.NotPanics(t, func() {
		h.OnDiagnostic(DiagnosticEvent{Kind: DiagRouteRegistered})
	})
}

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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/routes/pattern"
)

// resolveRecord captures one RecordResolve call.
type resolveRecord struct {
	method  string
	route   string
	matched bool
	elapsed time.Duration
}

// buildRecord captures one RecordBuild call.
type buildRecord struct {
	route string
	ok    bool
}

// mockRecorder implements Recorder and captures every observation.
type mockRecorder struct {
	mu       sync.Mutex
	resolves []resolveRecord
	builds   []buildRecord
}

func (m *mockRecorder) RecordResolve(method, route string, matched bool, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolves = append(m.resolves, resolveRecord{method, route, matched, elapsed})
}

func (m *mockRecorder) RecordBuild(route string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.builds = append(m.builds, buildRecord{route, ok})
}

func (m *mockRecorder) snapshot() ([]resolveRecord, []buildRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]resolveRecord(nil), m.resolves...), append([]buildRecord(nil), m.builds...)
}

func TestRecorderObservesResolve(t *testing.T) {
	t.Parallel()

	rec := &mockRecorder{}
	reg := MustNew(WithRecorder(rec))
	reg.MustAdd("GET", "users.show", "/users/:id")

	_, ok := reg.Resolve("get", "/users/42")
	require.True(t, ok)

	_, ok = reg.Resolve("GET", "/missing")
	require.False(t, ok)

	resolves, _ := rec.snapshot()
	require.Len(t, resolves, 2)

	assert.Equal(t, "GET", resolves[0].method, "recorded verb should be normalized")
	assert.Equal(t, "users.show", resolves[0].route)
	assert.True(t, resolves[0].matched)
	assert.GreaterOrEqual(t, resolves[0].elapsed, time.Duration(0))

	assert.Equal(t, "GET", resolves[1].method)
	assert.Empty(t, resolves[1].route, "a miss has no route name")
	assert.False(t, resolves[1].matched)
}

func TestRecorderObservesBuild(t *testing.T) {
	t.Parallel()

	rec := &mockRecorder{}
	reg := MustNew(WithRecorder(rec))
	reg.MustAdd("GET", "users.show", "/users/:id")

	_, err := reg.URLFor("users.show", pattern.NewParams().Set("id", "7"))
	require.NoError(t, err)

	_, err = reg.URLFor("users.show", nil)
	require.Error(t, err)

	_, err = reg.URLFor("missing", nil)
	require.Error(t, err)

	_, builds := rec.snapshot()
	require.Len(t, builds, 3)

	assert.Equal(t, buildRecord{route: "users.show", ok: true}, builds[0])
	assert.Equal(t, buildRecord{route: "users.show", ok: false}, builds[1])
	assert.Equal(t, buildRecord{route: "missing", ok: false}, builds[2])
}

func TestRecorderConcurrentResolve(t *testing.T) {
	t.Parallel()

	rec := &mockRecorder{}
	reg := MustNew(WithRecorder(rec))
	reg.MustAdd("GET", "users.show", "/users/:id")
	reg.Freeze()

	const goroutines = 8
	const iterations = 200

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				_, ok := reg.Resolve("GET", "/users/42")
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()

	resolves, _ := rec.snapshot()
	assert.Len(t, resolves, goroutines*iterations)
}

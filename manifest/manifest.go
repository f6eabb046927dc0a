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

package manifest

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"

	"rivaas.dev/routes"
)

// Version is the manifest schema version this package reads.
const Version = 1

var (
	// ErrUnsupportedVersion is returned when a manifest declares a schema
	// version this package does not understand.
	ErrUnsupportedVersion = errors.New("unsupported manifest version")

	// ErrUnknownHandler is returned by Apply when a route references a
	// handler name missing from the handler map.
	ErrUnknownHandler = errors.New("unknown handler")
)

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// File is a parsed route manifest.
type File struct {
	Version int         `yaml:"version"`
	Routes  []RouteSpec `yaml:"routes"`
}

// RouteSpec describes one route table entry.
type RouteSpec struct {
	Name           string            `yaml:"name"`
	Method         string            `yaml:"method"`
	Pattern        string            `yaml:"pattern"`
	PairedWildcard bool              `yaml:"paired_wildcard,omitempty"`
	Constraints    map[string]string `yaml:"constraints,omitempty"`
	Handlers       []string          `yaml:"handlers,omitempty"`
}

// Load parses manifest YAML. Environment references of the form ${VAR} and
// ${VAR:-default} are substituted across the whole document before decoding,
// and "$$" escapes a literal dollar sign. Decoding is strict: unknown fields
// and duplicate keys are errors.
//
// Load validates structure only; pattern syntax and duplicate route names
// surface later, from [File.Apply].
func Load(data []byte) (*File, error) {
	content := substituteEnvVars(string(data))

	var f File
	if err := yaml.UnmarshalWithOptions([]byte(content), &f, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	// An omitted version means the current schema.
	if f.Version == 0 {
		f.Version = Version
	}
	if f.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}

	for i, spec := range f.Routes {
		if spec.Name == "" {
			return nil, fmt.Errorf("route %d: name is required", i)
		}
		if spec.Method == "" {
			return nil, fmt.Errorf("route %q: method is required", spec.Name)
		}
		if spec.Pattern == "" {
			return nil, fmt.Errorf("route %q: pattern is required", spec.Name)
		}
	}

	return &f, nil
}

// LoadFile reads and parses a manifest from path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // manifest path is chosen by the caller
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return Load(data)
}

// Apply registers every route in the manifest on reg, in manifest order.
//
// The handlers map resolves manifest handler names to handler chains; a
// route's handlers field concatenates the named chains in order. Referencing
// a name missing from the map is an error.
//
// Apply stops at the first failing entry. Entries registered before the
// failure stay registered.
func (f *File) Apply(reg *routes.Registry, handlers map[string][]routes.Handler) error {
	for _, spec := range f.Routes {
		opts := make([]routes.RouteOption, 0, 2+len(spec.Constraints))

		if spec.PairedWildcard {
			opts = append(opts, routes.WithPairedWildcard())
		}
		for param, expr := range spec.Constraints {
			opts = append(opts, routes.WithConstraint(param, expr))
		}

		if len(spec.Handlers) > 0 {
			chain := make([]routes.Handler, 0, len(spec.Handlers))
			for _, name := range spec.Handlers {
				hs, ok := handlers[name]
				if !ok {
					return fmt.Errorf("route %q: %w: %s", spec.Name, ErrUnknownHandler, name)
				}
				chain = append(chain, hs...)
			}
			opts = append(opts, routes.WithHandlers(chain...))
		}

		if _, err := reg.Add(spec.Method, spec.Name, spec.Pattern, opts...); err != nil {
			return fmt.Errorf("route %q: %w", spec.Name, err)
		}
	}

	return nil
}

// escapedDollar stands in for "$$" during substitution so the escape cannot
// be re-expanded.
const escapedDollar = "\x00ESCAPED_DOLLAR\x00"

// substituteEnvVars replaces ${VAR} and ${VAR:-default} patterns with
// environment variable values.
func substituteEnvVars(content string) string {
	content = strings.ReplaceAll(content, "$$", escapedDollar)

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		defaultValue := ""
		if len(submatches) >= 3 {
			defaultValue = submatches[2]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		return defaultValue
	})

	return strings.ReplaceAll(result, escapedDollar, "$")
}

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

import "errors"

var (
	// ErrDuplicateRouteName indicates that a route name is already taken.
	// Names are unique across the whole registry, all verbs included.
	ErrDuplicateRouteName = errors.New("duplicate route name")

	// ErrRouteNotFound indicates that no route is registered under the
	// requested name.
	ErrRouteNotFound = errors.New("route not found")

	// ErrRegistryFrozen indicates a registration attempt after Freeze.
	ErrRegistryFrozen = errors.New("registry is frozen")

	// ErrNilOption indicates a constructor option that was handed a nil
	// implementation.
	ErrNilOption = errors.New("option requires a non-nil implementation")

	// ErrInvalidConstraint indicates a parameter constraint whose expression
	// does not compile.
	ErrInvalidConstraint = errors.New("invalid constraint expression")

	// ErrUnknownParam indicates a constraint on a parameter the route's
	// pattern does not declare.
	ErrUnknownParam = errors.New("pattern does not declare parameter")
)

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

import "net/http"

// GET registers a route for GET requests under a unique name.
//
// Example:
//
//	reg.GET("users.show", "/users/:id", routes.WithHandlers(showUser))
//	reg.GET("health", "/health")
func (r *Registry) GET(name, raw string, opts ...RouteOption) (*Route, error) {
	return r.Add(http.MethodGet, name, raw, opts...)
}

// POST registers a route for POST requests under a unique name.
// Commonly used for creating resources and handling form submissions.
//
// Example:
//
//	reg.POST("users.create", "/users", routes.WithHandlers(createUser))
func (r *Registry) POST(name, raw string, opts ...RouteOption) (*Route, error) {
	return r.Add(http.MethodPost, name, raw, opts...)
}

// PUT registers a route for PUT requests under a unique name.
// Typically used for updating or replacing entire resources.
//
// Example:
//
//	reg.PUT("users.update", "/users/:id", routes.WithHandlers(updateUser))
func (r *Registry) PUT(name, raw string, opts ...RouteOption) (*Route, error) {
	return r.Add(http.MethodPut, name, raw, opts...)
}

// PATCH registers a route for PATCH requests under a unique name.
// Used for partial updates to existing resources.
//
// Example:
//
//	reg.PATCH("users.patch", "/users/:id", routes.WithHandlers(patchUser))
func (r *Registry) PATCH(name, raw string, opts ...RouteOption) (*Route, error) {
	return r.Add(http.MethodPatch, name, raw, opts...)
}

// DELETE registers a route for DELETE requests under a unique name.
// Used for removing resources.
//
// Example:
//
//	reg.DELETE("users.delete", "/users/:id", routes.WithHandlers(deleteUser))
func (r *Registry) DELETE(name, raw string, opts ...RouteOption) (*Route, error) {
	return r.Add(http.MethodDelete, name, raw, opts...)
}

// HEAD registers a route for HEAD requests under a unique name.
// HEAD requests are like GET requests but carry no response body.
//
// Example:
//
//	reg.HEAD("users.exists", "/users/:id", routes.WithHandlers(checkUser))
func (r *Registry) HEAD(name, raw string, opts ...RouteOption) (*Route, error) {
	return r.Add(http.MethodHead, name, raw, opts...)
}

// OPTIONS registers a route for OPTIONS requests under a unique name.
// Commonly used for CORS preflight requests and API discovery.
//
// Example:
//
//	reg.OPTIONS("api.preflight", "/api/*", routes.WithHandlers(corsHandler))
func (r *Registry) OPTIONS(name, raw string, opts ...RouteOption) (*Route, error) {
	return r.Add(http.MethodOptions, name, raw, opts...)
}

/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// ErrorView is a minimal, serializable representation of a domain error.
//
// This is the shape we are comfortable exposing over the wire or in logs.
// Keeping it here allows both HTTP and gRPC adapters to share the same
// struct.
type ErrorView struct {
	// Domain is the domain identifier, e.g. "network".
	Domain string `json:"domain"`
	// Code is the integer code within the domain.
	Code int `json:"code"`
	// Name is the declared name of the code, when known.
	Name string `json:"name,omitempty"`
	// Class is the range label of the code, when it has one.
	Class string `json:"class,omitempty"`
	// Message is the human-readable error text.
	Message string `json:"message,omitempty"`
}

// ViewProvider is implemented by errors that can render themselves as an
// ErrorView without a Resolver.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

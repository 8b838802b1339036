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

import "dirpx.dev/ebridge/domain"

// Prober is one candidate domain. Given a code that was reported under this
// prober's domain it tries to build a typed value.
//
// Implementations are immutable and safe for concurrent use.
type Prober interface {
	// ID returns the declared domain identifier.
	ID() domain.ID

	// Probe builds a typed value for code. It returns false when the domain's
	// policy rejects the code; this is not an error.
	Probe(code int) (DomainError, bool)

	// Describe returns what the domain knows about code. It never fails.
	Describe(code int) Description
}

// Resolver resolves untyped (domain, code) pairs against a set of probers.
// It is implemented by registry.Registry.
type Resolver interface {
	// Resolve probes every candidate domain in order; the first match wins.
	Resolve(domain string, code int) (DomainError, bool)

	// Describe returns a flat description of the pair. Unregistered domains
	// produce a description with Registered == false.
	Describe(domain string, code int) Description
}

// Description is a flat, transport-friendly summary of a (domain, code)
// pair. It deliberately uses plain strings so that it can cross package
// boundaries and be logged as-is.
type Description struct {
	// Domain is the domain string exactly as reported.
	Domain string `json:"domain"`

	// Code is the integer code exactly as reported.
	Code int `json:"code"`

	// Name is the declared name of the code, e.g. "TimedOut". Empty when the
	// code is not declared in the domain.
	Name string `json:"name,omitempty"`

	// Class is the label of the range containing the code, e.g. "file".
	// Empty when no range matches.
	Class string `json:"class,omitempty"`

	// Registered reports whether the domain is known at all.
	Registered bool `json:"registered"`

	// Known reports whether the code is declared in the domain.
	Known bool `json:"known"`

	// Target is the registered domain the pair was routed to. It differs
	// from Domain only when an alias matched.
	Target string `json:"target,omitempty"`

	// Route tells how Domain was routed to Target: "exact", "alias",
	// "prefix" or "none".
	Route string `json:"route,omitempty"`
}

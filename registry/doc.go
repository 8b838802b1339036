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

// Package registry resolves untyped (domain, code) pairs against a fixed set
// of typed error domains.
//
// A Registry is an immutable snapshot assembled from functional options.
// Candidate domains are probed in registration order and the first domain
// that accepts the pair wins, so callers never need to chain type checks by
// hand:
//
//	r, err := registry.New(
//		registry.WithDomain(netcode.Domain),
//		registry.WithDomain(appcode.Domain),
//		registry.WithAlias("NSURLErrorDomain", "network"),
//		registry.WithAliasPrefix("legacy.net", "network"),
//	)
//	if err != nil {
//		return err
//	}
//	e, ok := r.Resolve("NSURLErrorDomain", -1001) // netcode.TimedOut, true
//
// Routing a foreign domain string to a registered domain uses, in order:
//
//  1. an exact match on a registered domain ID;
//  2. an exact alias registered with WithAlias;
//  3. the longest alias prefix registered with WithAliasPrefix, where "*"
//     matches exactly one dot-separated segment.
//
// Explain renders the routing and probing decision for diagnostics.
package registry

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

// Package ebridge bridges typed, domain-scoped error codes and untyped
// foreign error records.
//
// A foreign error record is what an external subsystem hands us at a failure
// point: a domain string and an integer code, nothing else. A typed error is
// a Go integer type whose values are declared, by name, in a Domain.
//
// Bridging in one direction, TryBridge, succeeds only when the record's
// domain string equals the Domain's identifier and the Domain's policy
// accepts the code. A mismatch is reported as (zero, false) and is not an
// error: callers probe several candidate domains in sequence and the first
// match wins. Bridging in the other direction, ToForeign, always succeeds.
//
// A concrete domain is declared once, as a package-level variable:
//
//	type Code int
//
//	const (
//	    Unknown  Code = -1
//	    TimedOut Code = -1001
//	)
//
//	var Domain = ebridge.MustDomain("network", []code.Entry[Code]{
//	    code.E("Unknown", Unknown),
//	    code.E("TimedOut", TimedOut),
//	}, ebridge.WithUnknown(Unknown))
//
//	func (c Code) Error() string       { return Domain.Format(c) }
//	func (c Code) ErrorDomain() string { return Domain.ID().String() }
//	func (c Code) ErrorCode() int      { return int(c) }
//
// Typed values compare with ==, work with errors.Is against a Foreign record
// of the same domain and code, and can be recovered from any error chain
// with Bridge.
package ebridge

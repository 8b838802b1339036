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

package ebridge

import (
	"fmt"

	"dirpx.dev/ebridge/apis"
)

// Foreign is an untyped error record reported by an external subsystem.
//
// It is a plain value: comparable, usable as a map key and never mutated by
// this package. Domain is kept exactly as reported.
type Foreign struct {
	Domain string `json:"domain"`
	Code   int    `json:"code"`
}

var _ apis.DomainError = Foreign{}

// Error implements the built-in error interface.
//
// The format is:
//
//	<domain>: code <code>
func (f Foreign) Error() string {
	if f.Domain == "" {
		return fmt.Sprintf("foreign error: code %d", f.Code)
	}
	return fmt.Sprintf("%s: code %d", f.Domain, f.Code)
}

// ErrorDomain implements apis.DomainError.
func (f Foreign) ErrorDomain() string { return f.Domain }

// ErrorCode implements apis.DomainError.
func (f Foreign) ErrorCode() int { return f.Code }

// Is reports whether target is a domain error with the same domain and code.
// It lets errors.Is match a foreign record against a typed constant:
//
//	errors.Is(err, netcode.TimedOut)
func (f Foreign) Is(target error) bool {
	t, ok := target.(apis.DomainError)
	if !ok {
		return false
	}
	return t.ErrorDomain() == f.Domain && t.ErrorCode() == f.Code
}

// ToForeign converts any domain error into its untyped record. It is total.
func ToForeign(e apis.DomainError) Foreign {
	if e == nil {
		return Foreign{}
	}
	return Foreign{Domain: e.ErrorDomain(), Code: e.ErrorCode()}
}

// Failure turns the outcome of a foreign call that reported failure into an
// error. When the subsystem failed without producing a record, rec is nil
// and UnknownFailure is returned, so callers never receive a nil error for a
// failed call.
func Failure(rec *Foreign) error {
	if rec == nil {
		return UnknownFailure
	}
	return *rec
}

// Walk visits every apis.DomainError in err's tree, depth first, in the same
// order errors.As would, and stops as soon as fn returns true. It reports
// whether fn returned true.
func Walk(err error, fn func(apis.DomainError) bool) bool {
	for err != nil {
		if de, ok := err.(apis.DomainError); ok && fn(de) {
			return true
		}
		switch x := err.(type) {
		case interface{ Unwrap() error }:
			err = x.Unwrap()
		case interface{ Unwrap() []error }:
			for _, e := range x.Unwrap() {
				if Walk(e, fn) {
					return true
				}
			}
			return false
		default:
			return false
		}
	}
	return false
}

// Bridge finds the first domain error in err's tree that d accepts and
// returns it as a typed value. Both typed values and Foreign records are
// considered.
func Bridge[T Integer](err error, d *Domain[T]) (T, bool) {
	var out T
	if err == nil || d == nil {
		return out, false
	}
	found := Walk(err, func(de apis.DomainError) bool {
		v, ok := d.TryBridge(ToForeign(de))
		if ok {
			out = v
		}
		return ok
	})
	return out, found
}

// IsDomain reports whether err's tree contains an error reported under id.
func IsDomain(err error, id string) bool {
	return Walk(err, func(de apis.DomainError) bool {
		return de.ErrorDomain() == id
	})
}

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

// Package adapter turns arbitrary Go errors into the flat shapes used by
// the transport packages: ebridge.Foreign records and apis.ErrorView.
package adapter

import (
	"errors"

	"dirpx.dev/ebridge"
	"dirpx.dev/ebridge/apis"
)

// ToForeign returns the record of the first domain error in err's tree.
// It reports false when err carries no domain error at all.
func ToForeign(err error) (ebridge.Foreign, bool) {
	var f ebridge.Foreign
	found := ebridge.Walk(err, func(de apis.DomainError) bool {
		f = ebridge.ToForeign(de)
		return true
	})
	return f, found
}

// ToView converts err into a public ErrorView.
//
// Errors that implement apis.ViewProvider render themselves. Otherwise the
// first domain error in the tree is described through r, which may be nil.
// Errors without any domain error are reported as ebridge.UnknownFailure
// carrying the original message.
//
// This function performs no redaction; Message is err.Error() verbatim.
func ToView(err error, r apis.Resolver) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		return vp.ErrorView()
	}

	f, ok := ToForeign(err)
	if !ok {
		f = ebridge.ToForeign(ebridge.UnknownFailure)
	}
	v := apis.ErrorView{
		Domain:  f.Domain,
		Code:    f.Code,
		Message: err.Error(),
	}

	if r != nil {
		d := r.Describe(f.Domain, f.Code)
		if d.Target != "" {
			v.Domain = d.Target
		}
		v.Name = d.Name
		v.Class = d.Class
	}
	if v.Name == "" {
		var ne apis.NamedError
		if errors.As(err, &ne) && ne.ErrorDomain() == f.Domain && ne.ErrorCode() == f.Code {
			v.Name = ne.ErrorName()
		}
	}
	return v
}

// ToDescription describes the first domain error in err's tree through r.
// Errors without a domain error are described as ebridge.UnknownFailure.
func ToDescription(err error, r apis.Resolver) apis.Description {
	f, ok := ToForeign(err)
	if !ok {
		f = ebridge.ToForeign(ebridge.UnknownFailure)
	}
	if r == nil {
		return apis.Description{Domain: f.Domain, Code: f.Code}
	}
	return r.Describe(f.Domain, f.Code)
}

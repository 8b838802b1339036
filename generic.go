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
	"dirpx.dev/ebridge/apis"
	"dirpx.dev/ebridge/code"
)

// GenericFailure is the domain of failures this package originates itself.
type GenericFailure int

// UnknownFailure is returned when a foreign subsystem reports failure but
// supplies no error record.
const UnknownFailure GenericFailure = 0

// Generic is the domain of GenericFailure.
var Generic = MustDomain("ebridge.generic", []code.Entry[GenericFailure]{
	code.E("UnknownFailure", UnknownFailure),
})

var _ apis.NamedError = UnknownFailure

func (g GenericFailure) Error() string       { return Generic.Format(g) }
func (g GenericFailure) ErrorDomain() string { return Generic.ID().String() }
func (g GenericFailure) ErrorCode() int      { return int(g) }
func (g GenericFailure) ErrorName() string   { return Generic.Name(g) }

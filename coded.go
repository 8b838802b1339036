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

// Coded is the typed value produced for domains whose Go type carries no
// methods, such as domains loaded from configuration. It is comparable;
// two Coded values are equal when domain and code agree (Name follows from
// those two).
type Coded struct {
	Domain string `json:"domain"`
	Code   int    `json:"code"`
	Name   string `json:"name,omitempty"`
}

var _ apis.NamedError = Coded{}

// Error implements the built-in error interface.
func (c Coded) Error() string {
	if c.Name != "" {
		return fmt.Sprintf("%s: %s (%d)", c.Domain, c.Name, c.Code)
	}
	return fmt.Sprintf("%s: code %d", c.Domain, c.Code)
}

// ErrorDomain implements apis.DomainError.
func (c Coded) ErrorDomain() string { return c.Domain }

// ErrorCode implements apis.DomainError.
func (c Coded) ErrorCode() int { return c.Code }

// ErrorName implements apis.NamedError.
func (c Coded) ErrorName() string { return c.Name }

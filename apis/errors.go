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

// DomainError is an error that belongs to a domain and carries an integer
// code within it. Every typed (bridged) error implements it, and so does the
// untyped foreign record.
//
// Two DomainError values of the same concrete type are equal when their
// codes are equal; ErrorDomain is constant per concrete type.
type DomainError interface {
	error

	// ErrorDomain returns the domain identifier, e.g. "network".
	ErrorDomain() string

	// ErrorCode returns the integer code within the domain.
	ErrorCode() int
}

// NamedError is implemented by typed domain errors that know the declared
// name of their code, e.g. "TimedOut".
type NamedError interface {
	DomainError

	// ErrorName returns the declared name, or "" for undeclared codes.
	ErrorName() string
}

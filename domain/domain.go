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

package domain

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// ID is the canonical, validated representation of a domain identifier.
//
// It is a separate type (not just string) so that declared domains cannot be
// mixed up with raw strings read from a foreign error record.
type ID string

// MinLength and MaxLength define the allowed length range for an ID.
const (
	// MinLength rejects ambiguous one- and two-letter domains.
	MinLength = 3

	// MaxLength is enough for a reverse-DNS style identifier with several
	// segments.
	MaxLength = 128
)

// idFmt accepts 1 to 8 dot-separated segments, each [a-z][a-z0-9_]*.
//
// Examples that match:
//
//	"network"
//	"application"
//	"dirpx.storage.pg"
//
// Examples that DO NOT match:
//
//	"Network"          (uppercase)
//	"storage..pg"      (empty segment)
//	"1storage"         (digit first)
//	"storage/pg"       (slash, Normalize turns it into a dot)
const idFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,7}$`

var idRe = regexp.MustCompile(idFmt)

var (
	// ErrInvalidFormat is returned when a value does not match the ID format.
	ErrInvalidFormat = errors.New("ebridge: invalid domain format")
	// ErrInvalidLength is returned when a value is too short or too long.
	ErrInvalidLength = errors.New("ebridge: invalid domain length")
)

var (
	_ encoding.TextMarshaler   = (*ID)(nil)
	_ encoding.TextUnmarshaler = (*ID)(nil)
)

// Empty is the zero-value ID. It never identifies a real domain.
var Empty ID = ""

// Parse normalizes and validates s. On success it returns a canonical ID.
func Parse(s string) (ID, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return ID(s), nil
}

// MustParse is the panic-on-error variant of Parse, for package-level
// declarations.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Normalize brings s closer to the canonical form:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - converts '/' to '.';
//   - replaces '-' with '_'.
//
// It does NOT guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether id is in canonical form. Empty is invalid.
func Validate(id ID) error {
	return validate(string(id))
}

// String returns the canonical string representation of the ID.
func (id ID) String() string {
	return string(id)
}

// Matches reports whether a raw domain string taken from a foreign record
// names this domain. The comparison is exact.
func (id ID) Matches(raw string) bool {
	return id != Empty && string(id) == raw
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	if err := Validate(id); err != nil {
		return nil, err
	}
	return []byte(id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrInvalidLength
	}
	if !idRe.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}

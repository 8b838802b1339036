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
	"encoding"
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  network  ", "network"},
		{"to lower", "NetWork", "network"},
		{"slash to dot", "dirpx/storage", "dirpx.storage"},
		{"dash to underscore", "user-activity", "user_activity"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{"network", "network"},
		{" Application ", "application"},
		{"dirpx/storage/pg", "dirpx.storage.pg"},
		{"ebridge.generic", "ebridge.generic"},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrInvalidLength},
		{"too short", "ab", ErrInvalidLength},
		{"digit first", "1network", ErrInvalidFormat},
		{"empty segment", "storage..pg", ErrInvalidFormat},
		{"too many segments", "a.b.c.d.e.f.g.h.i", ErrInvalidFormat},
		{"space inside", "net work", ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestMatches_IsExact(t *testing.T) {
	id := MustParse("network")
	if !id.Matches("network") {
		t.Fatal("exact match must succeed")
	}
	for _, raw := range []string{"Network", " network", "network.", ""} {
		if id.Matches(raw) {
			t.Fatalf("Matches(%q) must be false", raw)
		}
	}
	if Empty.Matches("") {
		t.Fatal("Empty must never match")
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("?")
}

func TestText_RoundTrip(t *testing.T) {
	var _ encoding.TextMarshaler = ID("")

	var id ID
	if err := id.UnmarshalText([]byte("  Dirpx/Network ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	b, err := id.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(b) != "dirpx.network" {
		t.Fatalf("MarshalText = %q, want %q", b, "dirpx.network")
	}

	if _, err := ID("Bad").MarshalText(); err == nil {
		t.Fatal("MarshalText must reject non-canonical IDs")
	}
	if err := id.UnmarshalText([]byte("x")); err == nil {
		t.Fatal("UnmarshalText must reject invalid input")
	}
}

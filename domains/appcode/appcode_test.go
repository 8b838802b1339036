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

package appcode

import (
	"errors"
	"fmt"
	"testing"

	"dirpx.dev/ebridge"
)

func TestTable_RoundTrip(t *testing.T) {
	if Domain.Table().Len() != 47 {
		t.Fatalf("table size = %d, want 47", Domain.Table().Len())
	}
	for _, c := range Domain.Table().Values() {
		f := ebridge.Foreign{Domain: ID, Code: int(c)}
		got, ok := From(f)
		if !ok || got != c {
			t.Fatalf("From(%+v) = %d, %v", f, got, ok)
		}
		if got.Foreign() != f {
			t.Fatalf("Foreign() = %+v, want %+v", got.Foreign(), f)
		}
	}
}

func TestPreserve(t *testing.T) {
	if Domain.Policy() != ebridge.Preserve {
		t.Fatalf("policy = %v", Domain.Policy())
	}
	got, ok := From(ebridge.Foreign{Domain: ID, Code: 5000})
	if !ok || got != Code(5000) {
		t.Fatalf("From(5000) = %d, %v", got, ok)
	}
	if Domain.Known(got) {
		t.Fatal("5000 is not declared")
	}
	if got.Foreign() != (ebridge.Foreign{Domain: ID, Code: 5000}) {
		t.Fatalf("Foreign() = %+v", got.Foreign())
	}
	if _, ok := From(ebridge.Foreign{Domain: "network", Code: 4}); ok {
		t.Fatal("other domain must not bridge")
	}
}

func TestUndeclaredCodeKeepsItsBlock(t *testing.T) {
	c, ok := From(ebridge.Foreign{Domain: ID, Code: 1570})
	if !ok {
		t.Fatal("1570 must bridge")
	}
	if !c.IsValidationError() || c.IsFileError() {
		t.Fatalf("1570 validation = %v, file = %v", c.IsValidationError(), c.IsFileError())
	}
	if got, want := c.Error(), "application: code 1570"; got != want {
		t.Fatalf("Error() = %q; want %q", got, want)
	}
	if d := Domain.Describe(1570); d.Known || d.Class != string(ClassValidation) {
		t.Fatalf("Describe(1570) = %+v", d)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"4 is file", FileNoSuchFile.IsFileError(), true},
		{"1023 is file", Code(1023).IsFileError(), true},
		{"1024 is validation", KeyValueValidation.IsValidationError(), true},
		{"1024 is not file", KeyValueValidation.IsFileError(), false},
		{"2048 is formatting", Formatting.IsFormattingError(), true},
		{"3072 has no family", UserCancelled.IsFormattingError() || UserCancelled.IsFileError(), false},
		{"3585 is executable", ExecutableArchitectureMismatch.IsExecutableError(), true},
		{"3852 is property list", PropertyListWriteInvalid.IsPropertyListError(), true},
		{"4099 is ipc", IPCConnectionInvalid.IsIPCError(), true},
		{"4354 is ubiquitous", UbiquitousFileNotUploadedDueToQuota.IsUbiquitousFileError(), true},
		{"4611 is user activity", UserActivityHandoffUserInfoTooLarge.IsUserActivityError(), true},
		{"4865 is coder", CoderValueNotFound.IsCoderError(), true},
		{"5000 is nothing", Code(5000).IsCoderError(), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if ov := Domain.Classifier().Overlaps(); len(ov) != 0 {
		t.Fatalf("ranges overlap: %+v", ov)
	}
}

func TestEveryDeclaredFileCodeIsInFileBlock(t *testing.T) {
	for _, e := range Domain.Table().Entries() {
		if e.Value < 1024 && !e.Value.IsFileError() {
			t.Fatalf("%s (%d) must be a file error", e.Name, e.Value)
		}
	}
}

func TestAs_AndIs(t *testing.T) {
	err := fmt.Errorf("save: %w", ebridge.Foreign{Domain: ID, Code: 640})
	got, ok := As(err)
	if !ok || got != FileWriteOutOfSpace {
		t.Fatalf("As = %d, %v", got, ok)
	}
	if !errors.Is(err, FileWriteOutOfSpace) {
		t.Fatal("errors.Is must match")
	}
	if errors.Is(err, FileLocking) {
		t.Fatal("errors.Is must not match a different code")
	}
}

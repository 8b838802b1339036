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

package class

import (
	"errors"
	"testing"
)

func TestClassify_FileAndValidation(t *testing.T) {
	table := []Range{
		R(0, 1023, "file"),
		R(1024, 2047, "validation"),
	}
	tests := []struct {
		code   int
		want   Label
		wantOK bool
	}{
		{4, "file", true},
		{0, "file", true},
		{1023, "file", true},
		{1024, "validation", true},
		{2047, "validation", true},
		{5000, "", false},
		{-1, "", false},
	}
	c := MustNew(table...)
	for _, tt := range tests {
		got, ok := Classify(tt.code, table)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("Classify(%d) = %q, %v; want %q, %v", tt.code, got, ok, tt.want, tt.wantOK)
		}
		got, ok = c.Classify(tt.code)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("Classifier.Classify(%d) = %q, %v; want %q, %v", tt.code, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	c := MustNew(
		R(0, 100, "broad"),
		R(50, 60, "narrow"),
	)
	if got, _ := c.Classify(55); got != "broad" {
		t.Fatalf("first range must win, got %q", got)
	}
	ov := c.Overlaps()
	if len(ov) != 1 || ov[0].First.Label != "broad" || ov[0].Second.Label != "narrow" {
		t.Fatalf("Overlaps() = %+v", ov)
	}
}

func TestClassifier_Is(t *testing.T) {
	c := MustNew(R(3584, 3839, "executable"))
	if !c.Is(3585, "executable") {
		t.Fatal("3585 must be executable")
	}
	if c.Is(3585, "file") || c.Is(4000, "executable") {
		t.Fatal("unexpected match")
	}
}

func TestNew_Rejects(t *testing.T) {
	if _, err := New(R(10, 1, "file")); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("inverted range: err = %v", err)
	}
	if _, err := New(R(1, 10, "File")); !errors.Is(err, ErrInvalidLabel) {
		t.Fatalf("bad label: err = %v", err)
	}
	if _, err := New(R(1, 10, "")); !errors.Is(err, ErrInvalidLabel) {
		t.Fatalf("empty label: err = %v", err)
	}
}

func TestNilClassifier(t *testing.T) {
	var c *Classifier
	if _, ok := c.Classify(1); ok {
		t.Fatal("nil classifier must not match")
	}
	if c.Ranges() != nil || c.Overlaps() != nil {
		t.Fatal("nil classifier must be empty")
	}
}

func TestDisjointTable_HasNoOverlaps(t *testing.T) {
	c := MustNew(R(0, 1023, "file"), R(1024, 2047, "validation"), R(2048, 2559, "formatting"))
	if ov := c.Overlaps(); len(ov) != 0 {
		t.Fatalf("unexpected overlaps: %+v", ov)
	}
}

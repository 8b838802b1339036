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
	"fmt"
	"regexp"
)

// Label names a family of codes, e.g. "file" or "validation".
type Label string

// MaxLength is the maximum length of a Label.
const MaxLength = 64

// labelRe is a single identifier segment; labels never contain dots.
var labelRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

var (
	// ErrInvalidLabel is returned for empty or malformed labels.
	ErrInvalidLabel = errors.New("ebridge: invalid class label")
	// ErrInvalidRange is returned when Lo > Hi.
	ErrInvalidRange = errors.New("ebridge: invalid class range")
)

// ParseLabel validates s as a Label. No normalization is applied.
func ParseLabel(s string) (Label, error) {
	if len(s) == 0 || len(s) > MaxLength || !labelRe.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	return Label(s), nil
}

// String returns the label as a plain string.
func (l Label) String() string { return string(l) }

// Range is a closed interval [Lo, Hi] of codes carrying a Label.
type Range struct {
	Lo    int
	Hi    int
	Label Label
}

// R is a short constructor for Range.
func R(lo, hi int, label Label) Range {
	return Range{Lo: lo, Hi: hi, Label: label}
}

// Contains reports whether c lies in [Lo, Hi].
func (r Range) Contains(c int) bool {
	return c >= r.Lo && c <= r.Hi
}

func (r Range) overlaps(o Range) bool {
	return r.Lo <= o.Hi && o.Lo <= r.Hi
}

// String renders the range as "label[lo,hi]".
func (r Range) String() string {
	return fmt.Sprintf("%s[%d,%d]", r.Label, r.Lo, r.Hi)
}

// Classify returns the label of the first range in table containing c.
// It does not validate the table.
func Classify(c int, table []Range) (Label, bool) {
	for _, r := range table {
		if r.Contains(c) {
			return r.Label, true
		}
	}
	return "", false
}

// Classifier is an immutable, validated, ordered list of ranges.
// The zero value and nil classify nothing.
type Classifier struct {
	ranges []Range
}

// New validates ranges and returns a Classifier preserving their order.
func New(ranges ...Range) (*Classifier, error) {
	cp := make([]Range, 0, len(ranges))
	for i, r := range ranges {
		if r.Lo > r.Hi {
			return nil, fmt.Errorf("%w: #%d %s", ErrInvalidRange, i, r)
		}
		if _, err := ParseLabel(string(r.Label)); err != nil {
			return nil, fmt.Errorf("range #%d: %w", i, err)
		}
		cp = append(cp, r)
	}
	return &Classifier{ranges: cp}, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(ranges ...Range) *Classifier {
	c, err := New(ranges...)
	if err != nil {
		panic(err)
	}
	return c
}

// Classify returns the label of the first range containing c.
func (c *Classifier) Classify(code int) (Label, bool) {
	if c == nil {
		return "", false
	}
	return Classify(code, c.ranges)
}

// Is reports whether code classifies as label.
func (c *Classifier) Is(code int, label Label) bool {
	got, ok := c.Classify(code)
	return ok && got == label
}

// Ranges returns a copy of the ranges in evaluation order.
func (c *Classifier) Ranges() []Range {
	if c == nil {
		return nil
	}
	out := make([]Range, len(c.ranges))
	copy(out, c.ranges)
	return out
}

// Overlap is a pair of ranges sharing at least one code. First precedes
// Second in evaluation order, so First wins for the shared codes.
type Overlap struct {
	First  Range
	Second Range
}

// Overlaps lists every overlapping pair in evaluation order.
func (c *Classifier) Overlaps() []Overlap {
	if c == nil {
		return nil
	}
	var out []Overlap
	for i := 0; i < len(c.ranges); i++ {
		for j := i + 1; j < len(c.ranges); j++ {
			if c.ranges[i].overlaps(c.ranges[j]) {
				out = append(out, Overlap{First: c.ranges[i], Second: c.ranges[j]})
			}
		}
	}
	return out
}

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

package code

import (
	"errors"
	"fmt"
	"sort"
)

// Integer is the set of underlying types a domain code may use.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

var (
	// ErrEmptyName is returned when an entry has no name.
	ErrEmptyName = errors.New("ebridge: empty code name")
	// ErrDuplicateName is returned when two entries share a name.
	ErrDuplicateName = errors.New("ebridge: duplicate code name")
	// ErrDuplicateCode is returned when two entries share a value.
	ErrDuplicateCode = errors.New("ebridge: duplicate code value")
)

// Entry is one declared (name, value) pair.
type Entry[T Integer] struct {
	Name  string
	Value T
}

// E is a short constructor for Entry, handy in table literals.
func E[T Integer](name string, v T) Entry[T] {
	return Entry[T]{Name: name, Value: v}
}

// Table is an immutable, validated set of entries.
type Table[T Integer] struct {
	// entries is sorted by value.
	entries []Entry[T]
	byValue map[T]string
	byName  map[string]T
}

// New validates entries and builds a Table. The input slice is copied.
func New[T Integer](entries ...Entry[T]) (*Table[T], error) {
	t := &Table[T]{
		entries: make([]Entry[T], 0, len(entries)),
		byValue: make(map[T]string, len(entries)),
		byName:  make(map[string]T, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: value %d", ErrEmptyName, int64(e.Value))
		}
		if prev, ok := t.byValue[e.Value]; ok {
			return nil, fmt.Errorf("%w: %d declared as %q and %q", ErrDuplicateCode, int64(e.Value), prev, e.Name)
		}
		if _, ok := t.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		t.byValue[e.Value] = e.Name
		t.byName[e.Name] = e.Value
		t.entries = append(t.entries, e)
	}
	sort.Slice(t.entries, func(i, j int) bool { return t.entries[i].Value < t.entries[j].Value })
	return t, nil
}

// MustNew is the panic-on-error variant of New. Intended for package-level
// tables, where a duplicate is a programmer error.
func MustNew[T Integer](entries ...Entry[T]) *Table[T] {
	t, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the declared name of v.
func (t *Table[T]) Name(v T) (string, bool) {
	if t == nil {
		return "", false
	}
	n, ok := t.byValue[v]
	return n, ok
}

// Lookup returns the value declared under name.
func (t *Table[T]) Lookup(name string) (T, bool) {
	if t == nil {
		var zero T
		return zero, false
	}
	v, ok := t.byName[name]
	return v, ok
}

// Contains reports whether v is a declared value.
func (t *Table[T]) Contains(v T) bool {
	_, ok := t.Name(v)
	return ok
}

// FromInt converts a raw integer into T when it is representable in T and
// declared in the table. It never reinterprets out-of-range values.
func (t *Table[T]) FromInt(raw int) (T, bool) {
	v, ok := Convert[T](raw)
	if !ok || !t.Contains(v) {
		var zero T
		return zero, false
	}
	return v, true
}

// Len returns the number of entries.
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a copy of all entries sorted by value.
func (t *Table[T]) Entries() []Entry[T] {
	if t == nil {
		return nil
	}
	out := make([]Entry[T], len(t.entries))
	copy(out, t.entries)
	return out
}

// Values returns all declared values in ascending order.
func (t *Table[T]) Values() []T {
	if t == nil {
		return nil
	}
	out := make([]T, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Value
	}
	return out
}

// Convert narrows raw into T, reporting false when raw does not fit.
func Convert[T Integer](raw int) (T, bool) {
	v := T(raw)
	if int(v) != raw {
		return v, false
	}
	return v, true
}

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

// Package prefixtrie implements a segment-aware prefix index over
// dot-separated identifiers such as "legacy.net.http".
//
// Each node is one segment; the wildcard "*" matches exactly one segment.
// Lookups return the deepest (longest) matching prefix, so a more specific
// rule always wins over a shorter one.
package prefixtrie

import (
	"errors"
	"strings"
)

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty or malformed segments, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("prefixtrie: invalid prefix")

// Trie maps dotted prefixes to values. It is not safe for concurrent
// Insert; once built it may be shared for concurrent Match calls.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, set only when hasVal is true.
	pattern string
}

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates prefix with val, replacing any previous value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	wild := 0
	for _, s := range segs {
		if s == "*" {
			wild++
			continue
		}
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
	}
	if wild == len(segs) {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		next, ok := cur.children[s]
		if !ok {
			next = New[T]()
			cur.children[s] = next
		}
		cur = next
	}
	cur.hasVal, cur.val, cur.pattern = true, val, prefix
	return nil
}

// Match returns the value of the deepest prefix of key, together with the
// pattern that matched. At equal depth an exact segment beats "*".
// Keys with malformed segments only match up to the first bad segment.
func (t *Trie[T]) Match(key string) (val T, pattern string, ok bool) {
	if t == nil {
		return val, "", false
	}
	best := -1
	var walk func(n *Trie[T], rest string, depth int)
	walk = func(n *Trie[T], rest string, depth int) {
		if n.hasVal && depth > best {
			best, val, pattern = depth, n.val, n.pattern
		}
		if rest == "" {
			return
		}
		seg, tail, _ := strings.Cut(rest, ".")
		if !validSegment(seg) {
			return
		}
		if next, ok := n.children[seg]; ok {
			walk(next, tail, depth+1)
		}
		if next, ok := n.children["*"]; ok {
			walk(next, tail, depth+1)
		}
	}
	walk(t, key, 0)
	return val, pattern, best >= 0
}

// validSegment reports whether seg matches [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}

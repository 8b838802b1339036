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

package prefixtrie

import (
	"errors"
	"testing"
)

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInsertAndMatch(t *testing.T) {
	tr := New[string]()
	must(t, tr.Insert("legacy.net", "network"))
	must(t, tr.Insert("legacy.net.http", "http"))

	tests := []struct {
		key         string
		wantVal     string
		wantPattern string
		wantOK      bool
	}{
		{"legacy.net", "network", "legacy.net", true},
		{"legacy.net.ftp", "network", "legacy.net", true},
		{"legacy.net.http.v2", "http", "legacy.net.http", true},
		{"legacy", "", "", false},
		{"legacy.network", "", "", false},
		{"other.net", "", "", false},
	}
	for _, tt := range tests {
		v, p, ok := tr.Match(tt.key)
		if v != tt.wantVal || p != tt.wantPattern || ok != tt.wantOK {
			t.Fatalf("Match(%q) = %q, %q, %v; want %q, %q, %v", tt.key, v, p, ok, tt.wantVal, tt.wantPattern, tt.wantOK)
		}
	}
}

func TestWildcard(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("com.*.net", 1))
	must(t, tr.Insert("com.acme.net", 2))

	if v, p, ok := tr.Match("com.acme.net"); !ok || v != 2 || p != "com.acme.net" {
		t.Fatalf("exact must beat wildcard: %d %q %v", v, p, ok)
	}
	if v, p, ok := tr.Match("com.other.net.io"); !ok || v != 1 || p != "com.*.net" {
		t.Fatalf("wildcard match failed: %d %q %v", v, p, ok)
	}
	if _, _, ok := tr.Match("com.net"); ok {
		t.Fatal("wildcard must not match zero segments")
	}
}

func TestDeeperWildcardBeatsShallowExact(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("a.*.c", 7))
	must(t, tr.Insert("a.b", 1))
	if v, p, ok := tr.Match("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("got %d %q %v", v, p, ok)
	}
}

func TestInvalidPrefixes(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "*", "*.*", "a..b", "Upper.case", "1a"} {
		if err := tr.Insert(p, 1); !errors.Is(err, ErrInvalidPrefix) {
			t.Fatalf("Insert(%q) error = %v", p, err)
		}
	}
	var nilTrie *Trie[int]
	if _, _, ok := nilTrie.Match("a"); ok {
		t.Fatal("nil trie must not match")
	}
}

func TestMalformedKeyStopsAtBadSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("legacy", 1))
	must(t, tr.Insert("legacy.net", 2))
	if v, _, ok := tr.Match("legacy.NET"); !ok || v != 1 {
		t.Fatalf("got %d %v; want 1 true", v, ok)
	}
}

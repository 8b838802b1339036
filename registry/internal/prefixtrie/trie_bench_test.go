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
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// segment returns a random valid segment: [a-z][a-z0-9_]{2,7}.
func segment(rng *rand.Rand) string {
	const tail = "abcdefghijklmnopqrstuvwxyz0123456789_"
	n := 3 + rng.Intn(6)
	b := make([]byte, n)
	b[0] = byte('a' + rng.Intn(26))
	for i := 1; i < n; i++ {
		b[i] = tail[rng.Intn(len(tail))]
	}
	return string(b)
}

// fixture inserts n prefixes of the given depth, replacing every k-th
// segment with "*" when k > 0, and returns keys that extend each prefix by
// two segments.
func fixture(b *testing.B, n, depth, k int) (*Trie[int], []string) {
	rng := rand.New(rand.NewSource(1))
	tr := New[int]()
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		pat := make([]string, depth)
		key := make([]string, depth, depth+2)
		for j := range pat {
			key[j] = segment(rng)
			pat[j] = key[j]
			if k > 0 && (j+1)%k == 0 {
				pat[j] = "*"
			}
		}
		if err := tr.Insert(strings.Join(pat, "."), i); err != nil {
			b.Fatalf("insert: %v", err)
		}
		key = append(key, segment(rng), segment(rng))
		keys = append(keys, strings.Join(key, "."))
	}
	return tr, keys
}

func BenchmarkMatch(b *testing.B) {
	for _, bc := range []struct{ n, depth, k int }{
		{16, 2, 0},
		{256, 3, 0},
		{256, 3, 2},
		{4096, 4, 0},
	} {
		b.Run(fmt.Sprintf("n=%d/depth=%d/wild=%d", bc.n, bc.depth, bc.k), func(b *testing.B) {
			tr, keys := fixture(b, bc.n, bc.depth, bc.k)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, ok := tr.Match(keys[i%len(keys)]); !ok {
					b.Fatalf("no match for %q", keys[i%len(keys)])
				}
			}
		})
	}
}

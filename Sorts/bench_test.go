package Sorts

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
)

// Dedupe is dominated by its seen-set. These compare the insertion-ordered
// set it uses against a plain map and the concurrent maps.
const bDedupeN = 1 << 16

func dedupeInput() []int {
	a := make([]int, bDedupeN)
	for i := range a {
		a[i] = _R.Intn(bDedupeN / 2)
	}
	return a
}

func BenchmarkDedupe(b *testing.B) {
	in := dedupeInput()
	b.ResetTimer()
	for range b.N {
		Dedupe(in)
	}
}

func BenchmarkDedupeBuiltinMap(b *testing.B) {
	in := dedupeInput()
	b.ResetTimer()
	for range b.N {
		seen := make(map[int]struct{}, len(in))
		r := make([]int, 0, len(in))
		for _, v := range in {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				r = append(r, v)
			}
		}
	}
}

func BenchmarkDedupeHaxMap(b *testing.B) {
	in := dedupeInput()
	b.ResetTimer()
	for range b.N {
		seen := haxmap.New[int, struct{}]()
		r := make([]int, 0, len(in))
		for _, v := range in {
			if _, ok := seen.Get(v); !ok {
				seen.Set(v, struct{}{})
				r = append(r, v)
			}
		}
	}
}

func BenchmarkDedupeHashMap(b *testing.B) {
	in := dedupeInput()
	b.ResetTimer()
	for range b.N {
		seen := hashmap.New[int, struct{}]()
		r := make([]int, 0, len(in))
		for _, v := range in {
			if seen.Insert(v, struct{}{}) {
				r = append(r, v)
			}
		}
	}
}

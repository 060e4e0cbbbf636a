// Package Sorts prepares arbitrary input for tree construction: duplicates are
// dropped and the remainder is sorted ascending.
package Sorts

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"golang.org/x/exp/constraints"
)

// Dedupe returns a new slice holding every distinct value of s once, in order
// of first occurrence. s is not modified.
// Time: O(n); Space: O(n)
func Dedupe[T comparable](s []T) []T {
	seen := linkedhashset.New()
	for _, v := range s {
		seen.Add(v)
	}
	r := make([]T, 0, seen.Size())
	for _, v := range seen.Values() {
		r = append(r, v.(T))
	}
	return r
}

// MergeSort returns a sorted copy of s. It is stable and allocates new storage
// at every merge level.
// Time: O(n log n); Space: O(n log n) total allocations.
func MergeSort[T constraints.Ordered](s []T) []T {
	if len(s) < 2 {
		return append([]T(nil), s...)
	}
	mid := len(s) >> 1
	return merge(MergeSort(s[:mid]), MergeSort(s[mid:]))
}

// merge two sorted slices. Ties take from a first to keep the sort stable.
func merge[T constraints.Ordered](a, b []T) []T {
	r := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j] < a[i] {
			r = append(r, b[j])
			j++
		} else {
			r = append(r, a[i])
			i++
		}
	}
	r = append(r, a[i:]...)
	return append(r, b[j:]...)
}

// SortUnique is MergeSort(Dedupe(s)). The result is strictly ascending and
// safe to build a tree from.
func SortUnique[T constraints.Ordered](s []T) []T {
	return MergeSort(Dedupe(s))
}

// FirstUnsorted returns the smallest i with s[i-1] >= s[i], or -1 if s is
// strictly ascending.
func FirstUnsorted[T constraints.Ordered](s []T) int {
	for i := 1; i < len(s); i++ {
		if !(s[i-1] < s[i]) {
			return i
		}
	}
	return -1
}

// IsSortedUnique reports whether s is strictly ascending.
func IsSortedUnique[T constraints.Ordered](s []T) bool {
	return FirstUnsorted(s) < 0
}

package Sorts

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

var _R = rand.New(rand.NewSource(0))

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	assert.Equal(t, []int{10, 5, 20, 3}, Dedupe([]int{10, 5, 10, 20, 5, 3, 3}))
	assert.Equal(t, []string{"b", "a"}, Dedupe([]string{"b", "a", "b"}))
}

func TestDedupeEmpty(t *testing.T) {
	assert.Empty(t, Dedupe([]int(nil)))
	assert.Empty(t, Dedupe([]int{}))
}

func TestDedupeDoesNotModifyInput(t *testing.T) {
	in := []int{3, 3, 1}
	Dedupe(in)
	assert.Equal(t, []int{3, 3, 1}, in)
}

func TestMergeSort(t *testing.T) {
	assert.Equal(t, []int{3, 5, 7, 10, 15, 20, 25}, MergeSort([]int{10, 5, 20, 3, 7, 15, 25}))
	assert.Equal(t, []float64{-1.5, 0, 2.25}, MergeSort([]float64{2.25, -1.5, 0}))
	assert.Empty(t, MergeSort([]int{}))
	assert.Equal(t, []int{1}, MergeSort([]int{1}))
}

func TestMergeSortRandom(t *testing.T) {
	for range 50 {
		in := make([]int, _R.Intn(300))
		for i := range in {
			in[i] = _R.Intn(100)
		}
		orig := slices.Clone(in)
		want := slices.Clone(in)
		slices.Sort(want)

		assert.Equal(t, want, MergeSort(in))
		assert.Equal(t, orig, in, "input must be left untouched")
	}
}

func TestSortUnique(t *testing.T) {
	got := SortUnique([]int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324})
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9, 23, 67, 324, 6345}, got)
	assert.True(t, IsSortedUnique(got))
}

func TestIsSortedUnique(t *testing.T) {
	assert.True(t, IsSortedUnique([]int{}))
	assert.True(t, IsSortedUnique([]int{4}))
	assert.True(t, IsSortedUnique([]string{"a", "b", "c"}))
	assert.False(t, IsSortedUnique([]int{1, 1, 2}))
	assert.False(t, IsSortedUnique([]int{2, 1}))
}

func TestFirstUnsorted(t *testing.T) {
	assert.Equal(t, -1, FirstUnsorted([]int{1, 2, 3}))
	assert.Equal(t, 2, FirstUnsorted([]int{1, 2, 2, 3}))
	assert.Equal(t, 1, FirstUnsorted([]int{5, 4}))
}

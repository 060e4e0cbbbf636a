package Trees

import (
	"github.com/g-m-twostay/go-bst/Sorts"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values. Unlike a
// self-balancing tree it never rotates: Insert and Delete may skew it, and
// balance comes back only through Rebalance, which rebuilds the whole tree.
// The zero value is an empty tree ready to use.
// Methods are recursive unless noted otherwise, so the stack grows with the
// height D of the tree.
type BSTree[T constraints.Ordered] struct {
	root *Node[T] // nil when empty.
	sz   int
}

// New builds a balanced tree holding values. values may be in any order and
// may repeat; the first occurrence of each value is kept. values isn't
// modified. Calling New without values gives an empty tree.
// Time: O(n log n)
func New[T constraints.Ordered](values ...T) *BSTree[T] {
	s := Sorts.SortUnique(values)
	return &BSTree[T]{build(s), len(s)}
}

// FromSorted builds a balanced tree from a strictly ascending slice, skipping
// the sort. It returns InvalidSliceError if s isn't strictly ascending.
// Time: O(n)
func FromSorted[T constraints.Ordered](s []T) (*BSTree[T], error) {
	if i := Sorts.FirstUnsorted(s); i >= 0 {
		return nil, &InvalidSliceError[T]{i, s[i-1], s[i]}
	}
	return &BSTree[T]{build(s), len(s)}, nil
}

// Root of the tree, nil if the tree is empty.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Size is the number of values in the tree.
// Time: O(1)
func (u *BSTree[T]) Size() int {
	return u.sz
}

// Empty reports whether the tree holds no values.
func (u *BSTree[T]) Empty() bool {
	return u.root == nil
}

// Find the node holding v. Returns nil if v isn't in the tree.
// Iterative. Time: O(D)
func (u *BSTree[T]) Find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Has v in the tree.
func (u *BSTree[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// Insert v as a new leaf. Returns false, leaving the tree as it was, if v is
// already present. The tree isn't rebalanced.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) bool {
	if insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// Delete v from the tree. Returns false, leaving the tree as it was, if v
// isn't present. Deleting a node with two children moves its in-order
// successor's value into it, so the Node that held v may survive holding a
// different value.
// Time: O(D)
func (u *BSTree[T]) Delete(v T) bool {
	var deleted bool
	if u.root, deleted = remove(u.root, v); deleted {
		u.sz--
	}
	return deleted
}

// Minimum value in the tree. The bool is false if the tree is empty.
// Iterative. Time: O(D)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return minNode(u.root).v, true
}

// Maximum value in the tree. The bool is false if the tree is empty.
// Iterative. Time: O(D)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return maxNode(u.root).v, true
}

// Values of the tree in ascending order, in a new slice.
// Iterative. Time: O(n)
func (u *BSTree[T]) Values() []T {
	r := make([]T, 0, u.sz)
	u.inOrder(func(n *Node[T]) {
		r = append(r, n.v)
	})
	return r
}

// Rebalance rebuilds the tree from its in-order values so that it's height
// balanced again. Nodes are reallocated: references taken before the call
// are detached afterwards.
// Time: O(n)
func (u *BSTree[T]) Rebalance() {
	u.root = build(u.Values())
}

package Trees

import "golang.org/x/exp/constraints"

// Node in a BSTree. Nodes are only created by the tree; callers get read access
// to them through Find, Root and the traversals.
// The value of a node can change when a node with two children is deleted: the
// in-order successor's value is moved into it.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
}

// Value held by n.
func (n *Node[T]) Value() T {
	return n.v
}

// Left child of n, nil if there is none.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child of n, nil if there is none.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// build a height balanced subtree from a strictly ascending slice. The root
// is s[(len(s)-1)/2], the lower middle for even lengths.
// Time: O(n)
func build[T constraints.Ordered](s []T) *Node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := (len(s) - 1) >> 1
	return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
}

// minNode is the leftmost node of the subtree rooting at n. n mustn't be nil.
func minNode[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func maxNode[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// insert v to the subtree rooting at *curPtr recursively. curPtr is passed by
// reference so a new leaf can be linked into its parent. Returns false when v
// is already there, in which case nothing changes.
func insert[T constraints.Ordered](curPtr **Node[T], v T) bool {
	if cur := *curPtr; cur == nil {
		*curPtr = &Node[T]{v: v}
		return true
	} else if v < cur.v {
		return insert(&cur.l, v)
	} else if v == cur.v {
		return false
	} else {
		return insert(&cur.r, v)
	}
}

// remove v from the subtree rooting at cur recursively. Returns the root the
// parent should hold afterwards and whether v was found.
// A node with two children takes the value of its in-order successor, which is
// then removed from the right subtree.
func remove[T constraints.Ordered](cur *Node[T], v T) (*Node[T], bool) {
	if cur == nil {
		return nil, false
	}
	deleted := false
	if v < cur.v {
		cur.l, deleted = remove(cur.l, v)
	} else if v == cur.v {
		if cur.l == nil {
			return cur.r, true
		} else if cur.r == nil {
			return cur.l, true
		}
		cur.v = minNode(cur.r).v
		cur.r, deleted = remove(cur.r, cur.v)
	} else {
		cur.r, deleted = remove(cur.r, v)
	}
	return cur, deleted
}

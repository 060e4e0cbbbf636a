// Package Trees holds BSTree, a binary search tree without repeated values
// that is balanced only when asked to be.
//
// A tree is not safe for concurrent use. Guard it with a sync.Mutex or keep
// it inside a single goroutine.
package Trees

import "fmt"

// Order selects how Walk visits the nodes of a tree.
type Order byte

const (
	// PreOrder visits a node, then its left subtree, then its right subtree.
	PreOrder Order = iota
	// InOrder visits the left subtree, the node, then the right subtree.
	// Values come out strictly ascending.
	InOrder
	// PostOrder visits the left subtree, the right subtree, then the node.
	PostOrder
	// LevelOrder visits breadth first, each level left to right.
	LevelOrder
)

var orderNames = [...]string{"pre-order", "in-order", "post-order", "level-order"}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", byte(o))
}

// MissingCallbackError is returned by a traversal called without a callback.
// The tree is not touched.
type MissingCallbackError struct {
	Order Order
}

func (e *MissingCallbackError) Error() string {
	return "Trees: " + e.Order.String() + " traversal requires a callback"
}

// UnknownOrderError is returned by Walk for an Order it doesn't know.
type UnknownOrderError struct {
	Order Order
}

func (e *UnknownOrderError) Error() string {
	return "Trees: unknown traversal " + e.Order.String()
}

// InvalidSliceError is returned by FromSorted when the slice isn't strictly
// ascending. Prev and Next are the offending neighbours, Index is the position
// of Next.
type InvalidSliceError[T any] struct {
	Index      int
	Prev, Next T
}

func (e *InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("Trees: slice not strictly ascending at index %d: %v then %v", e.Index, e.Prev, e.Next)
}

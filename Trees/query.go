package Trees

import "golang.org/x/exp/constraints"

// Height of the subtree rooting at n: the number of edges on the longest path
// from n down to a leaf. -1 for nil, 0 for a leaf. n may be any node, not only
// the root.
// Time: O(size of subtree)
func (u *BSTree[T]) Height(n *Node[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(u.Height(n.l), u.Height(n.r))
}

// Depth of n: the number of edges from the root to n.
// The search is guided by n's value. If it ends at a different node holding
// the same value, n is detached from this tree (for example after Rebalance
// or Delete) and Depth returns -1, as it does for nil, an empty tree, or a
// value that isn't present.
// Iterative. Time: O(D)
func (u *BSTree[T]) Depth(n *Node[T]) int {
	if n == nil {
		return -1
	}
	for cur, d := u.root, 0; cur != nil; d++ {
		if n.v < cur.v {
			cur = cur.l
		} else if n.v == cur.v {
			if cur == n {
				return d
			}
			return -1
		} else {
			cur = cur.r
		}
	}
	return -1
}

// IsBalanced reports whether, at every node of the subtree rooting at n, the
// heights of the left and right subtrees differ by at most 1. nil is balanced.
// Time: O(size of subtree)
func (u *BSTree[T]) IsBalanced(n *Node[T]) bool {
	_, ok := balancedHeight(n)
	return ok
}

// Balanced is IsBalanced(Root()).
func (u *BSTree[T]) Balanced() bool {
	return u.IsBalanced(u.root)
}

// balancedHeight returns the height of n and whether its subtree is balanced.
// The height is meaningless once the subtree is known to be unbalanced.
func balancedHeight[T constraints.Ordered](n *Node[T]) (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, ok := balancedHeight(n.l)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(n.r)
	if !ok {
		return 0, false
	}
	if d := lh - rh; d > 1 || d < -1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

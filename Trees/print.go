package Trees

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Print draws the subtree rooting at n to w as indented text, right subtree
// above left, for reading by people:
//
//	│       ┌── 25
//	│   ┌── 20
//	│   │   └── 15
//	└── 10
//	    │   ┌── 7
//	    └── 5
//	        └── 3
//
// Nothing is written for nil. The first write error is returned.
func Print[T constraints.Ordered](w io.Writer, n *Node[T]) error {
	return printNode(w, n, "", true)
}

// Print the whole tree to w. See the package level Print.
func (u *BSTree[T]) Print(w io.Writer) error {
	return Print(w, u.root)
}

func printNode[T constraints.Ordered](w io.Writer, n *Node[T], prefix string, isLeft bool) error {
	if n == nil {
		return nil
	}
	if n.r != nil {
		t := "    "
		if isLeft {
			t = "│   "
		}
		if err := printNode(w, n.r, prefix+t, false); err != nil {
			return err
		}
	}
	conn := "┌── "
	if isLeft {
		conn = "└── "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", prefix, conn, n.v); err != nil {
		return err
	}
	if n.l != nil {
		t := "│   "
		if isLeft {
			t = "    "
		}
		return printNode(w, n.l, prefix+t, true)
	}
	return nil
}

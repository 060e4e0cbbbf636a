package Trees

import "github.com/g-m-twostay/go-bst/Queues"

// Walk calls f once for every node of the tree in the given order. It returns
// MissingCallbackError if f is nil and UnknownOrderError for an unknown order;
// in both cases f isn't called. An empty tree calls f zero times.
// f mustn't modify the tree.
// All orders are iterative: depth first orders keep an explicit stack, level
// order a queue. Space: O(D) for depth first orders, O(width) for LevelOrder.
func (u *BSTree[T]) Walk(o Order, f func(*Node[T])) error {
	if f == nil {
		return &MissingCallbackError{o}
	}
	switch o {
	case PreOrder:
		u.preOrder(f)
	case InOrder:
		u.inOrder(f)
	case PostOrder:
		u.postOrder(f)
	case LevelOrder:
		u.levelOrder(f)
	default:
		return &UnknownOrderError{o}
	}
	return nil
}

// PreOrderWalk is Walk(PreOrder, f).
func (u *BSTree[T]) PreOrderWalk(f func(*Node[T])) error {
	return u.Walk(PreOrder, f)
}

// InOrderWalk is Walk(InOrder, f).
func (u *BSTree[T]) InOrderWalk(f func(*Node[T])) error {
	return u.Walk(InOrder, f)
}

// PostOrderWalk is Walk(PostOrder, f).
func (u *BSTree[T]) PostOrderWalk(f func(*Node[T])) error {
	return u.Walk(PostOrder, f)
}

// LevelOrderWalk is Walk(LevelOrder, f).
func (u *BSTree[T]) LevelOrderWalk(f func(*Node[T])) error {
	return u.Walk(LevelOrder, f)
}

func (u *BSTree[T]) preOrder(f func(*Node[T])) {
	if u.root == nil {
		return
	}
	st := []*Node[T]{u.root}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		f(cur)
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
	}
}

func (u *BSTree[T]) inOrder(f func(*Node[T])) {
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		f(cur)
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// postOrder keeps the last visited node to tell whether the right subtree of
// the stack top is done.
func (u *BSTree[T]) postOrder(f func(*Node[T])) {
	var st []*Node[T]
	var last *Node[T]
	for cur := u.root; cur != nil || len(st) > 0; {
		if cur != nil {
			st = append(st, cur)
			cur = cur.l
		} else if top := st[len(st)-1]; top.r != nil && top.r != last {
			cur = top.r
		} else {
			f(top)
			last = top
			st = st[:len(st)-1]
		}
	}
}

func (u *BSTree[T]) levelOrder(f func(*Node[T])) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](uint(u.sz/2 + 1))
	for q.Push(u.root); !q.Empty(); {
		cur := q.Peek()
		if _, err := q.Pop(); nil != err {
			panic(err)
		}
		f(cur)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}

package iterator

import (
	"go.lepak.sg/containers/stack"
	"go.lepak.sg/containers/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrderReverse[int])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* key and runs to the *smallest*
// key. It is InOrder with left and right flipped.
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[T constraints.Ordered] struct {
	root    *tree.Node[T]
	path    stack.Stack[*tree.Node[T]]
	started bool
}

// NewInOrderReverse returns a new InOrderReverse iterator over the
// tree rooted at root.
// Note: This is meant to be called by tree implementations.
func NewInOrderReverse[T constraints.Ordered](root *tree.Node[T]) *InOrderReverse[T] {
	return &InOrderReverse[T]{
		root: root,
	}
}

// Next returns true if there is a next key to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[T]) Next() bool {
	if !i.started {
		i.started = true
		i.descend(i.root)
		return i.path.Len() > 0
	}

	pop, ok := i.path.Pop()
	if !ok {
		return false
	}

	i.descend(pop.Left)
	return i.path.Len() > 0
}

func (i *InOrderReverse[T]) descend(n *tree.Node[T]) {
	for n != nil {
		i.path.Push(n)
		n = n.Right
	}
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[T]) Item() T {
	n, ok := i.path.Peek()
	if !ok {
		panic("Item called after Next returned false")
	}
	return n.Key
}

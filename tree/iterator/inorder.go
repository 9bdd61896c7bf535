package iterator

import (
	"go.lepak.sg/containers/stack"
	"go.lepak.sg/containers/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree. Iteration runs
// from the smallest key to the largest. Since tree nodes have no
// parent pointers, the iterator keeps the path from the root to the
// current node on an explicit stack; it never holds more than one
// root-to-leaf path at a time.
//
// The usage should be pretty familiar:
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T constraints.Ordered] struct {
	root    *tree.Node[T]
	path    stack.Stack[*tree.Node[T]]
	started bool
}

// NewInOrder returns a new InOrder iterator over the tree rooted at
// root. Note: This is meant to be called by tree implementations.
func NewInOrder[T constraints.Ordered](root *tree.Node[T]) *InOrder[T] {
	return &InOrder[T]{
		root: root,
	}
}

// Next returns true if there is a next key to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T]) Next() bool {
	if !i.started {
		i.started = true
		i.descend(i.root)
		return i.path.Len() > 0
	}

	pop, ok := i.path.Pop()
	if !ok {
		return false
	}

	i.descend(pop.Right)
	return i.path.Len() > 0
}

// descend pushes n and its chain of left children onto the path.
// The last node pushed is the smallest key under n.
func (i *InOrder[T]) descend(n *tree.Node[T]) {
	for n != nil {
		i.path.Push(n)
		n = n.Left
	}
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	n, ok := i.path.Peek()
	if !ok {
		panic("Item called after Next returned false")
	}
	return n.Key
}

package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a node of a binary search tree. A node exclusively owns its
// children: every edge belongs to exactly one parent, and there are no
// parent or sibling pointers.
//
// Height is the length of the longest path from this node down to a
// leaf, so a leaf has Height 0. Implementations that do not care about
// heights (like tree/binary) may leave it at zero.
type Node[T constraints.Ordered] struct {
	Key         T
	Left, Right *Node[T]
	Height      int
}

// NodeOf returns a new leaf node holding k.
func NodeOf[T constraints.Ordered](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// Height returns the cached height of the subtree rooted at n.
// An absent subtree has height -1.
func Height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return n.Height
}

// Balance returns the balance factor of n:
// Height(n.Right) - Height(n.Left).
// Negative means left-heavy, positive means right-heavy.
func (n *Node[T]) Balance() int {
	return Height(n.Right) - Height(n.Left)
}

// Reheight recomputes n's cached height from its children's cached
// heights. The children must already be up to date.
func (n *Node[T]) Reheight() {
	l, r := Height(n.Left), Height(n.Right)
	if l > r {
		n.Height = l + 1
	} else {
		n.Height = r + 1
	}
}

// Order is the result of comparing two keys.
type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

// Compare compares two ordered values.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

package binary

import (
	"math/bits"

	"go.lepak.sg/containers/tree"
	"go.lepak.sg/containers/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting).
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} when creating one).
//
// This tree implementation does not support removal. It is also not
// self-balancing: inserting keys in sorted order degrades it to a
// list. See the avl package for a tree that stays balanced.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted
//     at N.Left will be less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted
//     at N.Right will be greater than N.Key
//   - For every possible key, there will be at most one node with
//     that key in the tree (no duplicates allowed)
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root  *tree.Node[T]
	count int
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Less returns the largest key in the tree
// that is less than k.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// The best candidate is remembered on the way down. Nodes do not
	// know their parents, so there is no walking back up: any node
	// smaller than k is a candidate, and descending right from it
	// only finds better ones.
	n := t.root
	for n != nil {
		switch tree.Compare(n.Key, k) {
		case tree.Less:
			p, ok = n.Key, true
			n = n.Right
		case tree.Equal, tree.Greater:
			n = n.Left
		default:
			panic("unreachable")
		}
	}
	return
}

// Insert inserts k into the binary tree.
// If k is already in the tree, Insert returns false.
func (t *Tree[T]) Insert(k T) bool {
	if t.root == nil {
		t.root = tree.NodeOf(k)
		t.count = 1
		return true
	}

	n, p := t.root, (*tree.Node[T])(nil)
	var cmp tree.Order

	for n != nil {
		cmp = tree.Compare(k, n.Key)
		switch cmp {
		case tree.Less:
			n, p = n.Left, n
		case tree.Greater:
			n, p = n.Right, n
		case tree.Equal:
			return false
		default:
			panic("unreachable")
		}
	}

	switch cmp {
	case tree.Less:
		if p.Left != nil {
			panic("impossible")
		}
		p.Left = tree.NodeOf(k)
	case tree.Greater:
		if p.Right != nil {
			panic("impossible")
		}
		p.Right = tree.NodeOf(k)
	default:
		panic("unreachable")
	}

	t.count++
	return true
}

// Height returns the actual height of the tree, and the smallest
// height a binary tree with the same number of keys could have.
// An empty tree has height -1.
func (t *Tree[T]) Height() (actual, ideal int) {
	return height(t.root), bits.Len(uint(t.count)) - 1
}

func height[T constraints.Ordered](n *tree.Node[T]) int {
	// Computed on the fly: this tree does not maintain the cached
	// node heights the avl package relies on.
	if n == nil {
		return -1
	}

	l, r := height(n.Left), height(n.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Balanced returns true if, at every node in the tree, the heights
// of the node's subtrees differ by at most one.
func (t *Tree[T]) Balanced() bool {
	_, ok := balancedvisit(t.root)
	return ok
}

func balancedvisit[T constraints.Ordered](n *tree.Node[T]) (int, bool) {
	if n == nil {
		return -1, true
	}

	l, ok := balancedvisit(n.Left)
	if !ok {
		return 0, false
	}
	r, ok := balancedvisit(n.Right)
	if !ok {
		return 0, false
	}

	if d := l - r; d < -1 || d > 1 {
		return 0, false
	}
	if l > r {
		return l + 1, true
	}
	return r + 1, true
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	t.visitInOrder(t.root, f)
}

func (t *Tree[T]) visitInOrder(n *tree.Node[T], f func(k T) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which is not recursive
	if n == nil {
		return true
	}

	if !t.visitInOrder(n.Left, f) {
		return false
	}

	if !f(n.Key) {
		return false
	}

	return t.visitInOrder(n.Right, f)
}

// PreOrder applies f to each key in the tree in pre-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	t.visitPreOrder(t.root, f)
}

func (t *Tree[T]) visitPreOrder(n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}

	if !f(n.Key) {
		return false
	}

	if !t.visitPreOrder(n.Left, f) {
		return false
	}

	return t.visitPreOrder(n.Right, f)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) InOrderCoroutine() iterator.CoIterator[T] {
	// ?? Why can't T be inferred for CoIterate ??
	return iterator.CoIterate[T](t.InOrderIterator())
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root)
}

// String returns a string representation of the tree.
// See tree.Sprint for the format.
func (t *Tree[T]) String() string {
	return tree.Sprint(t.root)
}

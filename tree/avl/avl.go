// Package avl implements a self-balancing binary search tree.
//
// The tree keeps a cached height on every node and rebalances with
// rotations on the way back up from every insertion and removal, so
// the heights of the two subtrees under any node never differ by more
// than one. Lookup, insertion and removal are all O(log n).
package avl

import (
	"go.lepak.sg/containers/tree"
	"go.lepak.sg/containers/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree: an ordered set of unique keys.
// The zero value is an empty tree ready to use.
//
// Tree is not safe for concurrent use.
type Tree[T constraints.Ordered] struct {
	root  *tree.Node[T]
	count int
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[T]) IsEmpty() bool {
	return t.count == 0
}

// Insert adds key to the tree. It returns true if the key was added,
// or false if the key was already present, in which case the tree is
// unchanged.
func (t *Tree[T]) Insert(key T) bool {
	var added bool
	t.root, added = insert(t.root, key)
	if added {
		t.count++
	}
	return added
}

func insert[T constraints.Ordered](n *tree.Node[T], key T) (*tree.Node[T], bool) {
	if n == nil {
		return tree.NodeOf(key), true
	}

	var added bool
	switch tree.Compare(key, n.Key) {
	case tree.Less:
		n.Left, added = insert(n.Left, key)
	case tree.Greater:
		n.Right, added = insert(n.Right, key)
	case tree.Equal:
		return n, false
	default:
		panic("unreachable")
	}

	if !added {
		return n, false
	}
	return rebalance(n), true
}

// Remove deletes key from the tree. It returns true if the key was
// present. A node with both children swaps keys with its in-order
// predecessor, the largest key in its left subtree, and the
// predecessor's node is unlinked instead.
func (t *Tree[T]) Remove(key T) bool {
	var removed bool
	t.root, removed = remove(t.root, key)
	if removed {
		t.count--
	}
	return removed
}

func remove[T constraints.Ordered](n *tree.Node[T], key T) (*tree.Node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch tree.Compare(key, n.Key) {
	case tree.Less:
		n.Left, removed = remove(n.Left, key)
	case tree.Greater:
		n.Right, removed = remove(n.Right, key)
	case tree.Equal:
		switch {
		case n.Left == nil:
			return n.Right, true
		case n.Right == nil:
			return n.Left, true
		default:
			pred := n.Left
			for pred.Right != nil {
				pred = pred.Right
			}
			n.Key = pred.Key
			n.Left, _ = remove(n.Left, pred.Key)
			removed = true
		}
	default:
		panic("unreachable")
	}

	if !removed {
		return n, false
	}
	return rebalance(n), true
}

// rebalance restores the height invariant at n after a child subtree
// grew or shrank by one, and returns the new root of the subtree.
// A child leaning the same way as n (or not leaning at all) takes a
// single rotation; a child leaning the other way takes two.
func rebalance[T constraints.Ordered](n *tree.Node[T]) *tree.Node[T] {
	n.Reheight()
	switch n.Balance() {
	case -2:
		if n.Left.Balance() <= 0 {
			return n.RotateRight()
		}
		n.Left = n.Left.RotateLeft()
		return n.RotateRight()
	case 2:
		if n.Right.Balance() >= 0 {
			return n.RotateLeft()
		}
		n.Right = n.Right.RotateRight()
		return n.RotateLeft()
	}
	return n
}

// Clear removes every key from the tree. Links between nodes are cut
// so an outstanding reference to one node does not keep the whole
// tree alive.
func (t *Tree[T]) Clear() {
	scrub(t.root)
	t.root = nil
	t.count = 0
}

func scrub[T constraints.Ordered](n *tree.Node[T]) {
	if n == nil {
		return
	}
	scrub(n.Left)
	scrub(n.Right)
	n.Left = nil
	n.Right = nil
}

// String renders the tree with box-drawing characters, like
// tree.Sprint. An empty tree renders as the empty string.
func (t *Tree[T]) String() string {
	return tree.Sprint(t.root)
}

// InOrderIterator returns an iterator over the tree, from the
// smallest key to the largest.
// The result of mutating the tree while iterating is undefined.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root)
}

// InOrderReverseIterator returns an iterator over the tree, from the
// largest key to the smallest.
// The result of mutating the tree while iterating is undefined.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root)
}

// InOrderCoroutine starts coroutine-style iteration over the tree.
// See iterator.CoIterate for usage.
func (t *Tree[T]) InOrderCoroutine() iterator.CoIterator[T] {
	return iterator.CoIterate[T](iterator.NewInOrder(t.root))
}

package avl

import (
	"go.lepak.sg/containers/queue"
	"go.lepak.sg/containers/tree"
	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b hold the same keys in the same shape.
// Two trees that hold the same keys but arrived at them through
// different operations may have different shapes, and are not equal.
func Equal[T constraints.Ordered](a, b *Tree[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.count != b.count {
		return false
	}

	// Lockstep level-order walk. Nil children are pushed too, so a
	// missing child on one side cannot shift later nodes into
	// alignment.
	var qa, qb queue.Queue[*tree.Node[T]]
	qa.Push(a.root)
	qb.Push(b.root)
	for {
		na, ok := qa.Pop()
		if !ok {
			return true
		}
		nb, _ := qb.Pop()

		if na == nil || nb == nil {
			if na != nb {
				return false
			}
			continue
		}
		if na.Key != nb.Key {
			return false
		}

		qa.Push(na.Left)
		qa.Push(na.Right)
		qb.Push(nb.Left)
		qb.Push(nb.Right)
	}
}

// Clone returns a deep copy of the tree. Keys are replayed into the
// copy in level order; replaying a balanced tree top-down never trips
// a rotation, so the copy has exactly the original's shape.
func (t *Tree[T]) Clone() *Tree[T] {
	c := &Tree[T]{}
	_ = t.Traverse(LevelOrder, func(k T) {
		c.Insert(k)
	})
	return c
}

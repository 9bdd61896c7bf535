package avl

import (
	"fmt"

	"go.lepak.sg/containers/tree"
	"golang.org/x/exp/constraints"
)

// Audit checks the internal invariants of the tree: every cached
// height is correct, no node's subtrees differ in height by more than
// one, the key count matches the number of nodes, and an in-order
// walk yields strictly ascending keys. It returns nil if the tree is
// intact.
//
// A Tree mutated only through its methods always passes. Audit is for
// tests and for debugging changes to the rebalancing code.
func (t *Tree[T]) Audit() error {
	n, _, err := audit(t.root)
	if err != nil {
		return err
	}
	if n != t.count {
		return fmt.Errorf("avl: count is %d but tree holds %d keys", t.count, n)
	}

	keys, _ := t.Keys(InOrder)
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			return fmt.Errorf(
				"avl: keys out of order: %v before %v", keys[i-1], keys[i])
		}
	}
	return nil
}

func audit[T constraints.Ordered](n *tree.Node[T]) (count, height int, err error) {
	if n == nil {
		return 0, -1, nil
	}

	lc, lh, err := audit(n.Left)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := audit(n.Right)
	if err != nil {
		return 0, 0, err
	}

	height = lh
	if rh > height {
		height = rh
	}
	height++

	if n.Height != height {
		return 0, 0, fmt.Errorf(
			"avl: node %v: cached height %d, actual %d", n.Key, n.Height, height)
	}
	if bf := rh - lh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("avl: node %v leans by %d", n.Key, bf)
	}
	return lc + rc + 1, height, nil
}

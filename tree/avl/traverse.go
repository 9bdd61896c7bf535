package avl

import (
	"errors"
	"fmt"

	"go.lepak.sg/containers/queue"
	"go.lepak.sg/containers/tree"
)

// Traversal selects the order Traverse yields keys in.
type Traversal int

const (
	// PreOrder yields a node before either of its subtrees.
	PreOrder Traversal = iota
	// InOrder yields the left subtree, then the node, then the right
	// subtree. For this tree, that is ascending key order.
	InOrder
	// PostOrder yields both subtrees before the node.
	PostOrder
	// LevelOrder yields the root, then its children, and so on down,
	// left to right within each level.
	LevelOrder
)

func (o Traversal) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	default:
		return fmt.Sprintf("Traversal(%d)", int(o))
	}
}

// ErrUnknownTraversal is returned by Traverse and Keys when given a
// Traversal they do not recognize.
var ErrUnknownTraversal = errors.New("avl: unknown traversal order")

// Traverse calls visit with every key in the tree, in the order o.
func (t *Tree[T]) Traverse(o Traversal, visit func(T)) error {
	switch o {
	case PreOrder, InOrder, PostOrder:
		var walk func(n *tree.Node[T])
		walk = func(n *tree.Node[T]) {
			if n == nil {
				return
			}
			if o == PreOrder {
				visit(n.Key)
			}
			walk(n.Left)
			if o == InOrder {
				visit(n.Key)
			}
			walk(n.Right)
			if o == PostOrder {
				visit(n.Key)
			}
		}
		walk(t.root)
	case LevelOrder:
		if t.root == nil {
			break
		}
		var q queue.Queue[*tree.Node[T]]
		q.Push(t.root)
		for {
			n, ok := q.Pop()
			if !ok {
				break
			}
			visit(n.Key)
			if n.Left != nil {
				q.Push(n.Left)
			}
			if n.Right != nil {
				q.Push(n.Right)
			}
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownTraversal, o)
	}
	return nil
}

// Keys returns every key in the tree, in the order o.
func (t *Tree[T]) Keys(o Traversal) ([]T, error) {
	out := make([]T, 0, t.count)
	err := t.Traverse(o, func(k T) {
		out = append(out, k)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

package avl

import (
	"errors"
	"fmt"

	"go.lepak.sg/containers/queue"
	"go.lepak.sg/containers/tree"
)

// Strategy selects how Find walks the tree.
type Strategy int

const (
	// DepthFirst descends from the root, turning left or right at
	// each node by comparing keys. This is the usual binary search.
	DepthFirst Strategy = iota
	// BreadthFirst scans the tree with a queue, enqueueing only the
	// child that could still hold the key.
	BreadthFirst
)

func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ErrUnknownStrategy is returned by Find when given a Strategy it
// does not recognize.
var ErrUnknownStrategy = errors.New("avl: unknown search strategy")

// Contains reports whether key is in the tree.
func (t *Tree[T]) Contains(key T) bool {
	n := t.root
	for n != nil {
		switch tree.Compare(key, n.Key) {
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

// Find reports whether key is in the tree, walking it according to s.
// Both strategies find the same keys.
func (t *Tree[T]) Find(key T, s Strategy) (bool, error) {
	switch s {
	case DepthFirst:
		return t.Contains(key), nil
	case BreadthFirst:
		return t.findBreadthFirst(key), nil
	default:
		return false, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

func (t *Tree[T]) findBreadthFirst(key T) bool {
	if t.root == nil {
		return false
	}

	var q queue.Queue[*tree.Node[T]]
	q.Push(t.root)
	for {
		n, ok := q.Pop()
		if !ok {
			return false
		}
		switch tree.Compare(key, n.Key) {
		case tree.Equal:
			return true
		case tree.Less:
			if n.Left != nil {
				q.Push(n.Left)
			}
		case tree.Greater:
			if n.Right != nil {
				q.Push(n.Right)
			}
		default:
			panic("unreachable")
		}
	}
}

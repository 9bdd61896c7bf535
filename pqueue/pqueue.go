// Package pqueue implements a minimum priority queue over ordered
// elements, backed by a binary heap.
package pqueue

import (
	"go.lepak.sg/containers/heap"
	"golang.org/x/exp/constraints"
)

// PriorityQueue yields its smallest element first.
// The zero PriorityQueue is ready to use.
// PriorityQueue is not safe for concurrent use.
type PriorityQueue[T constraints.Ordered] struct {
	h minheap[T]
}

type minheap[T constraints.Ordered] []T

var _ heap.Interface[int] = (*minheap[int])(nil)

func (h minheap[_]) Len() int           { return len(h) }
func (h minheap[T]) Less(i, j int) bool { return h[i] < h[j] }
func (h minheap[_]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minheap[T]) Push(x T) {
	*h = append(*h, x)
}

func (h *minheap[T]) Pop() T {
	x := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return x
}

// Insert adds el to the queue. Duplicates are allowed. O(log n).
func (q *PriorityQueue[T]) Insert(el T) {
	heap.Push[T](&q.h, el)
}

// Min returns the smallest element without removing it.
// If the queue is empty, ok is false and el is the zero T.
func (q *PriorityQueue[T]) Min() (el T, ok bool) {
	if len(q.h) == 0 {
		return
	}
	return q.h[0], true
}

// RemoveMin removes and returns the smallest element.
// If the queue is empty, ok is false and el is the zero T. O(log n).
func (q *PriorityQueue[T]) RemoveMin() (el T, ok bool) {
	if len(q.h) == 0 {
		return
	}
	return heap.Pop[T](&q.h), true
}

// Len returns the number of elements in the queue.
func (q *PriorityQueue[_]) Len() int {
	return len(q.h)
}

// IsEmpty reports whether the queue holds no elements.
func (q *PriorityQueue[_]) IsEmpty() bool {
	return len(q.h) == 0
}

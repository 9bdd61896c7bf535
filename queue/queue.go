// Package queue provides a FIFO queue over any element type.
package queue

// Queue is a first-in-first-out container backed by a doubly linked
// list, so elements never move once enqueued.
// The zero Queue is ready to use.
// Queue is not safe for concurrent use.
type Queue[T any] struct {
	head, tail *entry[T]
	size       int
}

type entry[T any] struct {
	v          T
	prev, next *entry[T]
}

// Push appends x at the tail of the queue.
func (q *Queue[T]) Push(x T) {
	e := &entry[T]{v: x}

	if q.tail == nil {
		q.head, q.tail = e, e
	} else {
		e.prev = q.tail
		q.tail.next = e
		q.tail = e
	}
	q.size++
}

// Pop removes and returns the head of the queue.
// If the queue is empty, ok is false and x is the zero T.
func (q *Queue[T]) Pop() (x T, ok bool) {
	if q.head == nil {
		return
	}

	e := q.head
	q.head = e.next
	if q.head == nil {
		q.tail = nil
	} else {
		q.head.prev = nil
	}
	e.next = nil
	q.size--
	return e.v, true
}

// Peek returns the head of the queue without removing it.
// If the queue is empty, ok is false and x is the zero T.
func (q *Queue[T]) Peek() (x T, ok bool) {
	if q.head == nil {
		return
	}
	return q.head.v, true
}

// Len returns the number of elements in the queue.
func (q *Queue[_]) Len() int {
	return q.size
}

// Equal reports whether a and b hold the same elements in the same
// order. O(n).
func Equal[T comparable](a, b *Queue[T]) bool {
	if a.size != b.size {
		return false
	}

	x, y := a.head, b.head
	for x != nil {
		if x.v != y.v {
			return false
		}
		x, y = x.next, y.next
	}
	return true
}

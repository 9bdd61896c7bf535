// Package stack provides a LIFO stack over any element type.
package stack

// Stack is a last-in-first-out container backed by a slice.
// The zero Stack is ready to use.
// Stack is not safe for concurrent use.
type Stack[T any] struct {
	items []T
}

// Push places x on top of the stack.
func (s *Stack[T]) Push(x T) {
	s.items = append(s.items, x)
}

// Pop removes and returns the top of the stack.
// If the stack is empty, ok is false and x is the zero T.
func (s *Stack[T]) Pop() (x T, ok bool) {
	if len(s.items) == 0 {
		return
	}

	var zero T
	x = s.items[len(s.items)-1]
	// if T is a pointer, this prevents the truncated slot
	// from keeping *T alive
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return x, true
}

// Peek returns the top of the stack without removing it.
// If the stack is empty, ok is false and x is the zero T.
func (s *Stack[T]) Peek() (x T, ok bool) {
	if len(s.items) == 0 {
		return
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of elements on the stack.
func (s *Stack[_]) Len() int {
	return len(s.items)
}

// Package heap provides generic heap operations in the shape of the
// standard library's container/heap, with Push and Pop typed by a
// parameter instead of returning any.
package heap

// Interface describes the heap contract. The element at index 0 is
// the minimum relative to Less, for any Less: a max-heap is just a
// min-heap with the sign of Less flipped.
// Push and Pop in this interface add and remove at Len()-1 only;
// use the package functions to push and pop heap-ordered.
type Interface[T any] interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
	Push(x T)
	Pop() T
}

// Init establishes the heap ordering over h's existing elements.
// O(n) where n = h.Len().
func Init[T any](h Interface[T]) {
	n := h.Len()
	for i := n/2 - 1; i >= 0; i-- {
		down(h, i, n)
	}
}

// Push pushes x onto the heap. O(log n).
func Push[T any](h Interface[T], x T) {
	h.Push(x)
	up(h, h.Len()-1)
}

// Pop removes and returns the minimum element (relative to Less).
// O(log n).
func Pop[T any](h Interface[T]) T {
	n := h.Len() - 1
	h.Swap(0, n)
	down(h, 0, n)
	return h.Pop()
}

// Fix re-establishes the heap ordering after the element at index i
// changed its value. O(log n).
func Fix[T any](h Interface[T], i int) {
	if !down(h, i, h.Len()) {
		up(h, i)
	}
}

func up[T any](h Interface[T], j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		j = i
	}
}

func down[T any](h Interface[T], i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.Less(j2, j1) {
			j = j2 // = 2*i + 2, right child
		}
		if !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		i = j
	}
	return i > i0
}

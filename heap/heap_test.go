package heap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Interface[int] = (*intHeap)(nil)

type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *intHeap) Push(x int) {
	*h = append(*h, x)
}

func (h *intHeap) Pop() int {
	x := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return x
}

func verify(t *testing.T, h intHeap, i int) {
	t.Helper()
	n := h.Len()
	j1, j2 := 2*i+1, 2*i+2
	if j1 < n {
		require.False(t, h.Less(j1, i), "heap invariant broken at parent %d child %d", i, j1)
		verify(t, h, j1)
	}
	if j2 < n {
		require.False(t, h.Less(j2, i), "heap invariant broken at parent %d child %d", i, j2)
		verify(t, h, j2)
	}
}

func TestInit(t *testing.T) {
	h := intHeap{5, 2, 9, 1, 7, 3, 8, 4, 6, 0}
	Init[int](&h)
	verify(t, h, 0)
	assert.Equal(t, 0, h[0])
}

func TestPushPop(t *testing.T) {
	rd := rand.New(rand.NewSource(1))

	var h intHeap
	for i := 0; i < 100; i++ {
		Push[int](&h, rd.Intn(1000))
		verify(t, h, 0)
	}

	prev := -1
	for h.Len() > 0 {
		x := Pop[int](&h)
		verify(t, h, 0)
		assert.GreaterOrEqual(t, x, prev, "pops must come out ascending")
		prev = x
	}
}

func TestFix(t *testing.T) {
	h := intHeap{1, 2, 3, 4, 5, 6, 7}

	h[0] = 100 // sink
	Fix[int](&h, 0)
	verify(t, h, 0)

	h[h.Len()-1] = 0 // float
	Fix[int](&h, h.Len()-1)
	verify(t, h, 0)
	assert.Equal(t, 0, h[0])
}

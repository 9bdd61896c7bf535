package pqueue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"
)

func TestPriorityQueue(t *testing.T) {
	var q PriorityQueue[int]

	assert.True(t, q.IsEmpty())
	_, ok := q.Min()
	assert.False(t, ok, "min of empty queue")
	_, ok = q.RemoveMin()
	assert.False(t, ok, "remove-min of empty queue")

	for _, el := range []int{5, 1, 4, 1, 3} {
		q.Insert(el)
	}

	assert.False(t, q.IsEmpty())
	assert.Equal(t, 5, q.Len())

	min, ok := q.Min()
	assert.True(t, ok)
	assert.Equal(t, 1, min)
	assert.Equal(t, 5, q.Len(), "min must not remove")

	var got []int
	for {
		el, ok := q.RemoveMin()
		if !ok {
			break
		}
		got = append(got, el)
	}
	assert.Equal(t, []int{1, 1, 3, 4, 5}, got)
	assert.True(t, q.IsEmpty())
}

func TestPriorityQueue_Random(t *testing.T) {
	rd := rand.New(rand.NewSource(42))

	var q PriorityQueue[int]
	want := make([]int, 200)
	for i := range want {
		want[i] = rd.Intn(50)
		q.Insert(want[i])
	}
	slices.Sort(want)

	got := make([]int, 0, len(want))
	for !q.IsEmpty() {
		el, _ := q.RemoveMin()
		got = append(got, el)
	}

	assert.Equal(t, want, got)
}

func TestPriorityQueue_Strings(t *testing.T) {
	var q PriorityQueue[string]
	q.Insert("pear")
	q.Insert("apple")
	q.Insert("orange")

	min, ok := q.RemoveMin()
	assert.True(t, ok)
	assert.Equal(t, "apple", min)
}

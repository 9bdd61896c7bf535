package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"
)

func TestBuildRandom(t *testing.T) {
	tr := BuildRandom(50, 1)
	assert.Equal(t, 50, tr.Len())
	for i := 0; i < 50; i++ {
		assert.True(t, tr.Contains(i), "key %d", i)
	}

	var got []int
	tr.InOrder(func(k int) bool {
		got = append(got, k)
		return true
	})
	assert.Len(t, got, 50)
	assert.True(t, slices.IsSorted(got))

	// same seed, same tree
	assert.Equal(t, tr.String(), BuildRandom(50, 1).String())
}

func TestBuildRandomBalanced(t *testing.T) {
	tr, attempts := BuildRandomBalanced(20, 1)
	assert.True(t, tr.Balanced())
	assert.GreaterOrEqual(t, attempts, 1)
	assert.Equal(t, 20, tr.Len())
}

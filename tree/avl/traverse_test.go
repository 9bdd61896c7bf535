package avl

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/containers/testutils"
	"go.uber.org/goleak"
)

func TestTraverse(t *testing.T) {
	tests := []struct {
		name   string
		insert []int
		order  Traversal
		want   []int
	}{
		{
			name:   "pre-order",
			insert: []int{1, 2, 3, 4, 5, 6, 7},
			order:  PreOrder,
			want:   []int{4, 2, 1, 3, 6, 5, 7},
		},
		{
			name:   "in-order",
			insert: []int{1, 2, 3, 4, 5, 6, 7},
			order:  InOrder,
			want:   []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:   "post-order",
			insert: []int{1, 2, 3, 4, 5, 6, 7},
			order:  PostOrder,
			want:   []int{1, 3, 2, 5, 7, 6, 4},
		},
		{
			name:   "level-order",
			insert: []int{1, 2, 3, 4, 5, 6, 7},
			order:  LevelOrder,
			want:   []int{4, 2, 6, 1, 3, 5, 7},
		},
		{
			name:   "lopsided in-order",
			insert: []int{2, 1, 3, 4},
			order:  InOrder,
			want:   []int{1, 2, 3, 4},
		},
		{
			name:  "empty",
			order: InOrder,
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := treeOf(tt.insert...)
			var got []int
			err := tr.Traverse(tt.order, func(k int) {
				got = append(got, k)
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTraverse_UnknownTraversal(t *testing.T) {
	tr := treeOf(1, 2, 3)
	err := tr.Traverse(Traversal(99), func(int) {
		t.Error("visit should not be called")
	})
	assert.ErrorIs(t, err, ErrUnknownTraversal)

	keys, err := tr.Keys(Traversal(99))
	assert.Nil(t, keys)
	assert.ErrorIs(t, err, ErrUnknownTraversal)
}

func TestTraversal_String(t *testing.T) {
	assert.Equal(t, "pre-order", PreOrder.String())
	assert.Equal(t, "in-order", InOrder.String())
	assert.Equal(t, "post-order", PostOrder.String())
	assert.Equal(t, "level-order", LevelOrder.String())
	assert.Equal(t, "Traversal(99)", Traversal(99).String())
}

func TestInOrderIterator(t *testing.T) {
	tr := treeOf(5, 3, 8, 1, 4, 7, 9)

	var got []int
	for i := tr.InOrderIterator(); i.Next(); {
		got = append(got, i.Item())
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, got)

	got = got[:0]
	for i := tr.InOrderReverseIterator(); i.Next(); {
		got = append(got, i.Item())
	}
	assert.Equal(t, []int{9, 8, 7, 5, 4, 3, 1}, got)
}

func TestInOrderCoroutine(t *testing.T) {
	tr := treeOf(1, 2, 3, 4, 5, 6, 7)
	co := tr.InOrderCoroutine()
	testutils.DrainBlocking(t,
		[]int{1, 2, 3, 4, 5, 6, 7}, co.Items(), time.Second)
	goleak.VerifyNone(t)
}

func TestInOrderCoroutine_Stop(t *testing.T) {
	tr := treeOf(1, 2, 3, 4, 5, 6, 7)
	co := tr.InOrderCoroutine()

	var once sync.Once
	var got []int
	for k := range co.Items() {
		got = append(got, k)
		if k == 7 {
			once.Do(co.Stop)
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, got)
	goleak.VerifyNone(t)
}

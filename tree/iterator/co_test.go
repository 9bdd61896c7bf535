package iterator

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/containers/testutils"
	"go.uber.org/goleak"
)

func TestCoIterate_Nil(t *testing.T) {
	// This tests that untyped nil can be handled
	co := CoIterate[int](nil)
	_, ok := <-co.Items()
	assert.False(t, ok)
}

func TestCoIterate(t *testing.T) {
	tests := []struct {
		name   string
		create func() Iterator[int]
		do     func(t *testing.T, co CoIterator[int])
	}{
		{
			name: "empty",
			create: func() Iterator[int] {
				return NewInOrder[int](nil)
			},
			do: func(t *testing.T, co CoIterator[int]) {
				testutils.DrainBlocking(t, nil, co.Items(), time.Second)
			},
		},
		{
			name: "height=2",
			create: func() Iterator[int] {
				return NewInOrder(newCompleteTree_2Tall())
			},
			do: func(t *testing.T, co CoIterator[int]) {
				testutils.DrainBlocking(t,
					[]int{1, 2, 3, 4, 5, 6, 7}, co.Items(), time.Second)
			},
		},
		{
			name: "stopping",
			create: func() Iterator[int] {
				return NewInOrder(newCompleteTree_2Tall())
			},
			do: func(t *testing.T, co CoIterator[int]) {
				assert.Equal(t, 1, <-co.Items())
				co.Stop()
				testutils.DrainBlocking(t, nil, co.Items(), time.Second)
			},
		},
		{
			name: "usage",
			create: func() Iterator[int] {
				return NewInOrder(newCompleteTree_2Tall())
			},
			do: func(t *testing.T, co CoIterator[int]) {
				var a []int
				for k := range co.Items() {
					a = append(a, k)
					if k == 7 {
						co.Stop()
					}
				}
				assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, a)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.do(t, CoIterate[int](tt.create()))
			goleak.VerifyNone(t)
		})
	}
}

func TestCoIterate_Concurrent(t *testing.T) {
	// many consumers sharing one coroutine iterator
	co := CoIterate[int](NewInOrder(newCompleteTree_2Tall()))

	barrier := make(chan struct{})
	var once sync.Once
	var wg sync.WaitGroup
	wg.Add(4)
	for i := 0; i < 4; i++ {
		go func() {
			defer wg.Done()
			<-barrier
			for k := range co.Items() {
				if k > 5 {
					once.Do(co.Stop)
				}
			}
		}()
	}

	close(barrier)
	wg.Wait()

	goleak.VerifyNone(t)
}

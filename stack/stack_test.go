package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	var s Stack[int]

	_, ok := s.Pop()
	assert.False(t, ok, "pop of empty stack")
	_, ok = s.Peek()
	assert.False(t, ok, "peek of empty stack")
	assert.Zero(t, s.Len())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Len(), "peek must not remove")

	for want := 3; want >= 1; want-- {
		x, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, x)
	}

	_, ok = s.Pop()
	assert.False(t, ok, "stack should be drained")
}

func TestStack_Interleaved(t *testing.T) {
	var s Stack[string]

	s.Push("a")
	s.Push("b")

	x, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "b", x)

	s.Push("c")

	x, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "c", x)

	x, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "a", x)
}

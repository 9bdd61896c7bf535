package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
)

// TestT is the subset of testing.T that helpers in this package need.
type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// DrainBlocking expects to receive data in order from ch, then
// expects ch to be closed. The producer may still be sending when
// this is called. DrainBlocking waits at most wait for the whole
// drain, so a stuck producer fails the test instead of hanging it.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, wait time.Duration) {
	t.Logf("draining: expecting %v", data)
	deadline := time.After(wait)

	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting i=%d %v", i, datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-deadline:
			t.Errorf("timed out, expecting i=%d %v", i, datum)
			return
		}
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-deadline:
		t.Error("timed out waiting for the channel to be closed")
	}
}

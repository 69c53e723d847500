package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual_RunsInDueOrder(t *testing.T) {
	s := NewManual()
	var order []string

	s.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	s.AfterFunc(0, func() { order = append(order, "now") })

	s.RunPending()
	assert.Equal(t, []string{"now"}, order)

	s.Advance(15 * time.Millisecond)
	assert.Equal(t, []string{"now", "a"}, order)

	s.Advance(5 * time.Millisecond)
	assert.Equal(t, []string{"now", "a", "b"}, order)
	assert.Zero(t, s.Pending())
}

func TestManual_Cancel(t *testing.T) {
	s := NewManual()
	ran := false

	cancel := s.AfterFunc(time.Millisecond, func() { ran = true })
	cancel()
	cancel()

	s.Advance(time.Second)
	assert.False(t, ran)
}

func TestManual_NestedScheduling(t *testing.T) {
	s := NewManual()
	var hits int

	s.AfterFunc(10*time.Millisecond, func() {
		hits++
		s.AfterFunc(10*time.Millisecond, func() { hits++ })
	})

	s.Advance(25 * time.Millisecond)
	assert.Equal(t, 2, hits)
}

func TestTimer_FiresAndCancels(t *testing.T) {
	s := NewTimer()
	var fired atomic.Int32

	s.AfterFunc(time.Millisecond, func() { fired.Add(1) })
	cancel := s.AfterFunc(time.Hour, func() { fired.Add(100) })
	cancel()

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Zero(t, s.Pending())
}

func TestTimer_CloseCancelsOutstanding(t *testing.T) {
	s := NewTimer()
	var fired atomic.Bool

	s.AfterFunc(20*time.Millisecond, func() { fired.Store(true) })
	assert.Equal(t, 1, s.Pending())

	s.Close()
	assert.Zero(t, s.Pending())

	s.AfterFunc(0, func() { fired.Store(true) })
	time.Sleep(50 * time.Millisecond)
	assert.False(t, fired.Load())
}

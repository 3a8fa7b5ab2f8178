package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const tick = 5 * time.Millisecond

func waitFor(t *testing.T, cond func() bool, within time.Duration) {
	t.Helper()
	deadline := time.Now().Add(within)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not met within %v", within)
}

func TestCountdownExpiresExactlyOnce(t *testing.T) {
	var fired atomic.Int32
	c := New(3, tick, func() { fired.Add(1) })

	c.Start()
	waitFor(t, func() bool { return fired.Load() == 1 }, time.Second)

	assert.Equal(t, 0, c.Remaining())
	assert.False(t, c.Active())

	// A spent countdown stays quiet.
	c.Start()
	c.Resume()
	time.Sleep(10 * tick)
	assert.Equal(t, int32(1), fired.Load())
}

func TestPauseStopsTicks(t *testing.T) {
	var fired atomic.Int32
	c := New(1000, tick, func() { fired.Add(1) })

	c.Start()
	waitFor(t, func() bool { return c.Remaining() < 1000 }, time.Second)
	c.Pause()

	at := c.Remaining()
	time.Sleep(10 * tick)
	assert.Equal(t, at, c.Remaining(), "remaining moved after pause")
	assert.Equal(t, int32(0), fired.Load())

	c.Resume()
	waitFor(t, func() bool { return c.Remaining() < at }, time.Second)
}

func TestResetRestoresDuration(t *testing.T) {
	c := New(1000, tick, nil)

	c.Start()
	waitFor(t, func() bool { return c.Remaining() < 1000 }, time.Second)
	c.Pause()
	c.Reset()

	assert.Equal(t, 1000, c.Remaining())
	assert.False(t, c.Active(), "reset must not change active state")

	// Reset while running keeps it running from the top.
	c.Resume()
	c.Reset()
	assert.True(t, c.Active())
	waitFor(t, func() bool { return c.Remaining() < 1000 }, time.Second)
}

func TestPauseResumeChurnFiresAtMostOnce(t *testing.T) {
	var fired atomic.Int32
	c := New(2, tick, func() { fired.Add(1) })

	c.Start()
	for i := 0; i < 50; i++ {
		c.Pause()
		c.Resume()
	}
	waitFor(t, func() bool { return fired.Load() >= 1 }, time.Second)
	time.Sleep(10 * tick)
	assert.Equal(t, int32(1), fired.Load())
}

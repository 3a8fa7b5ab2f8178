// Package timer provides the cancellable one-second countdowns behind the
// strategy and move phases. The server is authoritative: clients only render
// the remaining time, expiry is decided here.
package timer

import (
	"sync"
	"time"
)

// Countdown ticks once per interval while active and fires onExpire exactly
// once when it reaches zero. Every state change bumps a generation counter
// and any tick scheduled under an older generation is dropped, so a pause is
// effective immediately even if a tick was already in flight.
type Countdown struct {
	mu        sync.Mutex
	duration  int
	remaining int
	active    bool
	gen       uint64
	interval  time.Duration
	pending   *time.Timer
	onExpire  func()
}

// New creates an inactive countdown of durationSec seconds. interval is the
// tick period, one second in production; tests shrink it.
func New(durationSec int, interval time.Duration, onExpire func()) *Countdown {
	return &Countdown{
		duration:  durationSec,
		remaining: durationSec,
		interval:  interval,
		onExpire:  onExpire,
	}
}

// Start activates the countdown from its current remaining time.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining <= 0 {
		return
	}
	c.active = true
	c.scheduleLocked()
}

// Pause deactivates the countdown. No tick fires after Pause returns.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = false
	c.invalidateLocked()
}

// Resume continues a paused countdown; a no-op when already active or spent.
func (c *Countdown) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active || c.remaining <= 0 {
		return
	}
	c.active = true
	c.scheduleLocked()
}

// Reset restores the configured duration. Whether the countdown is running
// stays as it was; an active countdown restarts from the top.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = c.duration
	c.invalidateLocked()
	if c.active {
		c.scheduleLocked()
	}
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// invalidateLocked cancels any pending tick and bumps the generation so a
// tick that already fired but has not taken the lock yet becomes stale.
func (c *Countdown) invalidateLocked() {
	c.gen++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Countdown) scheduleLocked() {
	c.invalidateLocked()
	gen := c.gen
	c.pending = time.AfterFunc(c.interval, func() { c.tick(gen) })
}

func (c *Countdown) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.active {
		c.mu.Unlock()
		return
	}
	c.remaining--
	if c.remaining > 0 {
		c.scheduleLocked()
		c.mu.Unlock()
		return
	}
	c.remaining = 0
	c.active = false
	c.invalidateLocked()
	expire := c.onExpire
	c.mu.Unlock()

	// Outside the lock: the callback typically feeds a lobby inbox and may
	// call back into this countdown.
	if expire != nil {
		expire()
	}
}

// Package countdown runs the match clock: a single countdown decrementing on
// a fixed one-second cadence, cancelled or restarted on phase transitions.
package countdown

import (
	"log/slog"
	"sync"
	"time"

	"genie-scoreboard-service/internal/logging"
	"genie-scoreboard-service/internal/timeutil"
)

const defaultCadence = time.Second

// Event is pushed to displays on every clock change.
type Event struct {
	Remaining int    `json:"remaining"`
	Display   string `json:"display"`
	Running   bool   `json:"running"`
	Expired   bool   `json:"expired"`
}

// Sink receives countdown events; the hub implements it.
type Sink interface {
	PublishCountdown(ev Event)
}

// Countdown owns the match clock. At most one ticking loop is active at a
// time; Start while running is a no-op.
type Countdown struct {
	sink    Sink
	logger  *slog.Logger
	cadence time.Duration

	mu        sync.Mutex
	duration  time.Duration
	remaining int
	running   bool
	done      chan struct{}
}

// New constructs a stopped countdown holding the full match duration.
func New(duration time.Duration, sink Sink, logger *slog.Logger) *Countdown {
	return &Countdown{
		sink:      sink,
		logger:    logger,
		cadence:   defaultCadence,
		duration:  duration,
		remaining: int(duration / time.Second),
	}
}

// Start begins ticking from the full duration. No-op when already running.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.remaining = int(c.duration / time.Second)
	c.startLocked()
	logging.Info(c.logger, "countdown started", logging.FieldCount, c.remaining)
}

// Pause halts the clock keeping the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.stopLocked()
	c.publishLocked(false)
}

// Resume continues a paused clock. No-op when running or expired.
func (c *Countdown) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running || c.remaining <= 0 {
		return
	}
	c.startLocked()
}

// Reset stops the clock and restores the full duration.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.remaining = int(c.duration / time.Second)
	c.publishLocked(false)
}

// Stop cancels the clock without publishing; used on phase transitions.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

// Remaining returns the seconds left on the clock.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Running reports whether the clock is ticking.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Countdown) startLocked() {
	c.running = true
	done := make(chan struct{})
	c.done = done
	go c.run(done)
	c.publishLocked(false)
}

func (c *Countdown) stopLocked() {
	if !c.running {
		return
	}
	c.running = false
	if c.done != nil {
		close(c.done)
		c.done = nil
	}
}

func (c *Countdown) run(done chan struct{}) {
	ticker := time.NewTicker(c.cadence)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if c.tick() {
				return
			}
		}
	}
}

// tick decrements once; returns true when the loop should exit.
func (c *Countdown) tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return true
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.stopLocked()
		c.publishLocked(true)
		logging.Info(c.logger, "countdown expired")
		return true
	}
	c.publishLocked(false)
	return false
}

func (c *Countdown) publishLocked(expired bool) {
	if c.sink == nil {
		return
	}
	c.sink.PublishCountdown(Event{
		Remaining: c.remaining,
		Display:   timeutil.FormatClock(c.remaining),
		Running:   c.running,
		Expired:   expired,
	})
}

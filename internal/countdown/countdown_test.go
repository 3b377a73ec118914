package countdown

import (
	"sync"
	"testing"
	"time"
)

type captureSink struct {
	mu     sync.Mutex
	events []Event
}

func (c *captureSink) PublishCountdown(ev Event) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
}

func (c *captureSink) last() (Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.events) == 0 {
		return Event{}, false
	}
	return c.events[len(c.events)-1], true
}

func (c *captureSink) expiredCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, ev := range c.events {
		if ev.Expired {
			n++
		}
	}
	return n
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestCountdownRunsToExpiry(t *testing.T) {
	sink := &captureSink{}
	c := New(3*time.Second, sink, nil)
	c.cadence = 3 * time.Millisecond

	c.Start()
	waitFor(t, func() bool { return sink.expiredCount() > 0 })

	if c.Running() {
		t.Fatal("expired countdown should not be running")
	}
	if c.Remaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", c.Remaining())
	}
	if got := sink.expiredCount(); got != 1 {
		t.Fatalf("expected exactly one expiry event, got %d", got)
	}
}

func TestCountdownPauseResume(t *testing.T) {
	sink := &captureSink{}
	c := New(time.Hour, sink, nil)
	c.cadence = 3 * time.Millisecond

	c.Start()
	waitFor(t, func() bool { return c.Remaining() < 3600 })
	c.Pause()
	if c.Running() {
		t.Fatal("expected paused clock")
	}
	frozen := c.Remaining()
	time.Sleep(15 * time.Millisecond)
	if c.Remaining() != frozen {
		t.Fatal("paused clock must not tick")
	}

	c.Resume()
	waitFor(t, func() bool { return c.Remaining() < frozen })
	c.Stop()
}

func TestCountdownResetRestoresFullDuration(t *testing.T) {
	sink := &captureSink{}
	c := New(10*time.Second, sink, nil)
	c.cadence = 3 * time.Millisecond

	c.Start()
	waitFor(t, func() bool { return c.Remaining() < 10 })
	c.Reset()

	if c.Running() {
		t.Fatal("reset clock should be stopped")
	}
	if c.Remaining() != 10 {
		t.Fatalf("expected full duration back, got %d", c.Remaining())
	}
	last, ok := sink.last()
	if !ok || last.Running || last.Remaining != 10 {
		t.Fatalf("expected a stopped full-duration event, got %+v", last)
	}
}

func TestCountdownStartIsIdempotent(t *testing.T) {
	sink := &captureSink{}
	c := New(time.Hour, sink, nil)
	c.cadence = 3 * time.Millisecond

	c.Start()
	c.Start() // must not spawn a second loop
	waitFor(t, func() bool { return c.Remaining() < 3600 })
	before := c.Remaining()
	c.Stop()
	time.Sleep(15 * time.Millisecond)
	after := c.Remaining()
	// A leaked second loop would keep decrementing after Stop.
	if after != before && after != before-1 {
		t.Fatalf("remaining moved after stop: %d -> %d", before, after)
	}
}

func TestCountdownStopIsIdempotent(t *testing.T) {
	c := New(time.Minute, nil, nil)
	c.Stop()
	c.Stop()
	c.Start()
	c.Stop()
	c.Stop()
}

func TestCountdownDisplayFormat(t *testing.T) {
	sink := &captureSink{}
	c := New(90*time.Second, sink, nil)

	c.Reset()
	last, ok := sink.last()
	if !ok || last.Display != "1:30" {
		t.Fatalf("expected 1:30 display, got %+v", last)
	}
}

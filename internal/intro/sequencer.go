// Package intro drives the pre-game presentation sequence: a fixed list of
// timed steps pushed to displays, ending with a hand-off into active play.
package intro

import (
	"log/slog"
	"sync"
	"time"

	"genie-scoreboard-service/internal/logging"
)

// Step is one slide of the intro sequence.
type Step struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration"`
}

// Event is pushed to displays when a step begins.
type Event struct {
	Step  Step `json:"step"`
	Index int  `json:"index"`
	Total int  `json:"total"`
}

// Sink receives intro events; the hub implements it.
type Sink interface {
	PublishIntroStep(ev Event)
}

// DefaultSteps is the standard match-intro run.
func DefaultSteps() []Step {
	return []Step{
		{Name: "title", Duration: 3 * time.Second},
		{Name: "roster_one", Duration: 4 * time.Second},
		{Name: "roster_two", Duration: 4 * time.Second},
		{Name: "versus", Duration: 3 * time.Second},
		{Name: "count", Duration: 3 * time.Second},
	}
}

// Sequencer plays the intro steps once per Run. It is cancellable and
// re-runnable; at most one run is active at a time.
type Sequencer struct {
	steps  []Step
	sink   Sink
	logger *slog.Logger
	onDone func()

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// New constructs a sequencer. onDone is called after the last step finishes
// (not on cancellation); it is where the game flips into active play.
func New(steps []Step, sink Sink, logger *slog.Logger, onDone func()) *Sequencer {
	if len(steps) == 0 {
		steps = DefaultSteps()
	}
	return &Sequencer{steps: steps, sink: sink, logger: logger, onDone: onDone}
}

// Run starts the sequence. No-op when already running.
func (s *Sequencer) Run() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	logging.Info(s.logger, "intro sequence started", logging.FieldCount, len(s.steps))
	go s.play(done)
}

// Stop cancels an in-flight run. Safe to call repeatedly.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Running reports whether a sequence is in flight.
func (s *Sequencer) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Sequencer) stopLocked() {
	if !s.running {
		return
	}
	s.running = false
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
}

func (s *Sequencer) play(done chan struct{}) {
	for i, step := range s.steps {
		if s.sink != nil {
			s.sink.PublishIntroStep(Event{Step: step, Index: i, Total: len(s.steps)})
		}
		timer := time.NewTimer(step.Duration)
		select {
		case <-done:
			timer.Stop()
			logging.Info(s.logger, "intro sequence cancelled", logging.FieldCount, i)
			return
		case <-timer.C:
		}
	}

	s.mu.Lock()
	wasRunning := s.running
	s.stopLocked()
	s.mu.Unlock()
	if !wasRunning {
		// Cancelled between the last step and completion.
		return
	}

	logging.Info(s.logger, "intro sequence complete")
	if s.onDone != nil {
		s.onDone()
	}
}

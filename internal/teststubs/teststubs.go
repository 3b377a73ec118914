// Package teststubs provides shared fakes for package tests.
package teststubs

import (
	"context"
	"sync"

	"genie-scoreboard-service/internal/celebrate"
	"genie-scoreboard-service/internal/domain"
	"genie-scoreboard-service/internal/game"
)

// EffectRecorder captures every celebration and audio cue it is asked to
// render.
type EffectRecorder struct {
	mu          sync.Mutex
	invocations []celebrate.Invocation
	cues        []celebrate.AudioCue
}

func (r *EffectRecorder) Play(inv celebrate.Invocation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invocations = append(r.invocations, inv)
}

func (r *EffectRecorder) Cue(cue celebrate.AudioCue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, cue)
}

// Invocations returns a copy of the recorded celebration invocations.
func (r *EffectRecorder) Invocations() []celebrate.Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]celebrate.Invocation, len(r.invocations))
	copy(out, r.invocations)
	return out
}

// Cues returns a copy of the recorded audio cues.
func (r *EffectRecorder) Cues() []celebrate.AudioCue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]celebrate.AudioCue, len(r.cues))
	copy(out, r.cues)
	return out
}

// StateRecorder captures every published board state.
type StateRecorder struct {
	mu     sync.Mutex
	states []game.State
}

func (r *StateRecorder) PublishState(s game.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

// Last returns the most recently published state, if any.
func (r *StateRecorder) Last() (game.State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return game.State{}, false
	}
	return r.states[len(r.states)-1], true
}

// ContentProvider returns canned rubrics or a canned error.
type ContentProvider struct {
	Rubrics []domain.Rubric
	Err     error
	Calls   int
}

func (p *ContentProvider) FetchRubrics(ctx context.Context) ([]domain.Rubric, error) {
	p.Calls++
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Rubrics, nil
}


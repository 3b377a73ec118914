// Package game owns the canonical two-team scoreboard. Every mutation runs
// the full sequence (snapshot, classification, history, dispatch) under one
// mutex before returning, so no two score events can interleave.
package game

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"genie-scoreboard-service/internal/celebrate"
	"genie-scoreboard-service/internal/classify"
	"genie-scoreboard-service/internal/domain"
	"genie-scoreboard-service/internal/logging"
	"genie-scoreboard-service/internal/metrics"
)

// Engine is the single owner of game state.
type Engine struct {
	mu      sync.Mutex
	phase   domain.Phase
	teams   [2]domain.Team
	history []domain.HistoryEntry

	rng        classify.Rand
	dispatcher *celebrate.Dispatcher
	logger     *slog.Logger
	metrics    *metrics.Recorder
	publisher  Publisher
	now        func() time.Time

	countdown Stopper
	intro     Stopper
	playlist  Stopper
}

// NewEngine constructs an Engine with two fresh default teams.
func NewEngine(rng classify.Rand, dispatcher *celebrate.Dispatcher, logger *slog.Logger, recorder *metrics.Recorder) *Engine {
	e := &Engine{
		rng:        rng,
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    recorder,
		now:        time.Now,
	}
	e.phase = domain.PhaseSetup
	e.teams = defaultTeams(e.now())
	return e
}

// SetPublisher wires the state fan-out sink.
func (e *Engine) SetPublisher(p Publisher) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.publisher = p
}

// Attach registers the cancellable collaborators stopped on phase changes.
// Any of them may be nil.
func (e *Engine) Attach(countdown, intro, playlist Stopper) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.countdown = countdown
	e.intro = intro
	e.playlist = playlist
}

// ApplyTeamDelta adds points to a team's score. Positive team awards ripple
// to every active player's personal tally; negative adjustments never touch
// player tallies.
func (e *Engine) ApplyTeamDelta(team, points int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	checkIndex(team)

	prev := e.snapshotLocked()
	t := &e.teams[team]
	t.Score += points
	t.LastScoreChange = points
	t.ScoreUpdatedAt = e.now()
	if points > 0 {
		for i := range t.Players {
			if t.Players[i].Active {
				t.Players[i].PointsScored += points
			}
		}
	}
	next := e.snapshotLocked()

	e.appendHistoryLocked("")
	out := classify.Classify(prev, next, team, points, e.rng)
	e.dispatchLocked(out.Primary)
	e.dispatchLocked(out.Milestone)
	e.cueLocked(points)

	if e.metrics != nil {
		e.metrics.RecordScoreMutation("team")
	}
	logging.Info(e.logger, "team score applied",
		logging.FieldTeam, team,
		logging.FieldPoints, points,
	)
	e.publishLocked()
}

// ApplyPlayerDelta adds points to one player's personal tally (clamped at
// zero) while the team aggregate takes the raw, unclamped delta.
func (e *Engine) ApplyPlayerDelta(team int, playerID string, points int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	checkIndex(team)

	t := &e.teams[team]
	idx := -1
	for i := range t.Players {
		if t.Players[i].ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrPlayerNotFound
	}

	prev := e.snapshotLocked()
	before := t.Clone()

	p := &t.Players[idx]
	p.PointsScored += points
	if p.PointsScored < 0 {
		p.PointsScored = 0
	}
	t.Score += points
	t.LastScoreChange = points
	t.ScoreUpdatedAt = e.now()

	next := e.snapshotLocked()

	out := classify.Classify(prev, next, team, points, e.rng)
	e.dispatchLocked(out.Primary)
	e.dispatchLocked(out.Milestone)
	e.dispatchLocked(&domain.Decision{
		Kind:     domain.CelebrationPlayerScore,
		Team:     team,
		Points:   points,
		Player:   p.Name,
		PlayerID: p.ID,
	})
	if best := classify.BestScorer(before, e.teams[team], playerID); best != nil {
		best.Team = team
		e.dispatchLocked(best)
	}
	e.cueLocked(points)

	if e.metrics != nil {
		e.metrics.RecordScoreMutation("player")
	}
	logging.Info(e.logger, "player score applied",
		logging.FieldTeam, team,
		logging.FieldPlayer, playerID,
		logging.FieldPoints, points,
	)
	e.publishLocked()
	return nil
}

// AddPlayer registers a roster member. A blank trimmed name is rejected with
// ErrEmptyName and mutates nothing.
func (e *Engine) AddPlayer(team int, name, photo string) (domain.Player, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	checkIndex(team)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Player{}, ErrEmptyName
	}

	player := domain.Player{
		ID:     uuid.NewString(),
		Name:   name,
		Photo:  photo,
		Active: true,
	}
	e.teams[team].Players = append(e.teams[team].Players, player)
	e.publishLocked()
	return player, nil
}

// TogglePlayerActive flips a player between starter and substitute.
// Inactive players are skipped by the team-award ripple.
func (e *Engine) TogglePlayerActive(team int, playerID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	checkIndex(team)

	for i := range e.teams[team].Players {
		if e.teams[team].Players[i].ID == playerID {
			e.teams[team].Players[i].Active = !e.teams[team].Players[i].Active
			e.publishLocked()
			return nil
		}
	}
	return ErrPlayerNotFound
}

// SetTeamColor updates a team's display color.
func (e *Engine) SetTeamColor(team int, color string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	checkIndex(team)
	e.teams[team].Color = color
	e.publishLocked()
}

// RenameTeam updates a team's display name; blank names are rejected.
func (e *Engine) RenameTeam(team int, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	checkIndex(team)

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	e.teams[team].Name = name
	e.publishLocked()
	return nil
}

// SwapSides exchanges the two teams' physical positions.
func (e *Engine) SwapSides() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.teams[0].Side, e.teams[1].Side = e.teams[1].Side, e.teams[0].Side
	e.publishLocked()
}

// StartGame moves the board from setup into the intro sequence and records
// the opening history entry.
func (e *Engine) StartGame() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != domain.PhaseSetup {
		return ErrWrongPhase
	}
	e.phase = domain.PhaseIntro
	e.appendHistoryLocked("match start")
	logging.Info(e.logger, "match started", logging.FieldPhase, string(e.phase))
	e.publishLocked()
	return nil
}

// BeginPlay flips intro to active; the intro sequencer calls this when its
// last step completes.
func (e *Engine) BeginPlay() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != domain.PhaseIntro {
		return ErrWrongPhase
	}
	e.phase = domain.PhaseActive
	logging.Info(e.logger, "play begins", logging.FieldPhase, string(e.phase))
	e.publishLocked()
	return nil
}

// EndGame finishes the match, cancelling the countdown and background audio.
// In-flight celebration visuals finish naturally.
func (e *Engine) EndGame() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != domain.PhaseIntro && e.phase != domain.PhaseActive {
		return ErrWrongPhase
	}
	e.phase = domain.PhaseFinished
	e.stopCollaboratorsLocked()
	logging.Info(e.logger, "match ended", logging.FieldPhase, string(e.phase))
	e.publishLocked()
	return nil
}

// Reset discards both teams for two fresh defaults, clears history and
// stops every running timer.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.phase = domain.PhaseSetup
	e.teams = defaultTeams(e.now())
	e.history = nil
	e.stopCollaboratorsLocked()
	logging.Info(e.logger, "board reset", logging.FieldPhase, string(e.phase))
	e.publishLocked()
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() domain.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// State returns a deep-copied view for rendering.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

// Snapshot returns the current score pair.
func (e *Engine) Snapshot() domain.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// WinningTeam returns the index of the strictly higher-scoring team, or
// domain.NoLeader on an exact tie.
func (e *Engine) WinningTeam() int {
	return e.Snapshot().WinningTeam()
}

func (e *Engine) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{e.teams[0].Score, e.teams[1].Score}
}

func (e *Engine) stateLocked() State {
	history := make([]domain.HistoryEntry, len(e.history))
	copy(history, e.history)
	return State{
		Phase:   e.phase,
		Teams:   [2]domain.Team{e.teams[0].Clone(), e.teams[1].Clone()},
		History: history,
	}
}

func (e *Engine) appendHistoryLocked(label string) {
	e.history = append(e.history, domain.HistoryEntry{
		ID:    uuid.NewString(),
		At:    e.now(),
		Teams: [2]domain.Team{e.teams[0].Clone(), e.teams[1].Clone()},
		Label: label,
	})
}

func (e *Engine) dispatchLocked(decision *domain.Decision) {
	if e.dispatcher == nil || decision == nil {
		return
	}
	e.dispatcher.Dispatch(decision, [2]celebrate.TeamInfo{
		{Color: e.teams[0].Color, Side: e.teams[0].Side},
		{Color: e.teams[1].Color, Side: e.teams[1].Side},
	})
}

func (e *Engine) cueLocked(points int) {
	if e.dispatcher != nil {
		e.dispatcher.CueForPoints(points)
	}
}

func (e *Engine) publishLocked() {
	if e.publisher != nil {
		e.publisher.PublishState(e.stateLocked())
	}
}

func (e *Engine) stopCollaboratorsLocked() {
	for _, s := range []Stopper{e.countdown, e.intro, e.playlist} {
		if s != nil {
			s.Stop()
		}
	}
}

func checkIndex(team int) {
	if team != 0 && team != 1 {
		panic("game: team index out of range")
	}
}

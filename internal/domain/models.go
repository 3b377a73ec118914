package domain

import "time"

// Phase mirrors the match lifecycle states.
type Phase string

const (
	PhaseSetup    Phase = "SETUP"
	PhaseIntro    Phase = "INTRO"
	PhaseActive   Phase = "ACTIVE"
	PhaseFinished Phase = "FINISHED"
)

// NoLeader is the sentinel returned when both teams are tied.
const NoLeader = -1

// MilestoneStep is the fixed point threshold whose crossing triggers a
// one-time milestone celebration.
const MilestoneStep = 100

// Player represents one roster member. PointsScored is the player's personal
// tally and is clamped at zero on decrease; the team aggregate is not.
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Photo        string `json:"photo,omitempty"`
	Active       bool   `json:"active"`
	PointsScored int    `json:"pointsScored"`
}

// Team is one of the two sides of a match. Score has no floor or ceiling.
type Team struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Score           int       `json:"score"`
	LastScoreChange int       `json:"lastScoreChange"`
	ScoreUpdatedAt  time.Time `json:"scoreUpdatedAt"`
	Players         []Player  `json:"players"`
	Side            int       `json:"side"`
	Color           string    `json:"color"`
}

// Clone returns a deep copy of the team, detaching the roster slice.
func (t Team) Clone() Team {
	cp := t
	cp.Players = make([]Player, len(t.Players))
	copy(cp.Players, t.Players)
	return cp
}

// TopScorer returns the player with the strictly highest tally, breaking
// exact ties by lexicographic player ID so the result is deterministic.
func (t Team) TopScorer() (Player, bool) {
	if len(t.Players) == 0 {
		return Player{}, false
	}
	best := t.Players[0]
	for _, p := range t.Players[1:] {
		if p.PointsScored > best.PointsScored ||
			(p.PointsScored == best.PointsScored && p.ID < best.ID) {
			best = p
		}
	}
	return best, true
}

// Snapshot captures both team scores at one instant. Index 0 and 1 follow
// the canonical team array, not the display side.
type Snapshot [2]int

// WinningTeam returns the index of the strictly higher-scoring team, or
// NoLeader on an exact tie.
func (s Snapshot) WinningTeam() int {
	switch {
	case s[0] > s[1]:
		return 0
	case s[1] > s[0]:
		return 1
	default:
		return NoLeader
	}
}

// Gap returns the absolute score difference.
func (s Snapshot) Gap() int {
	gap := s[0] - s[1]
	if gap < 0 {
		gap = -gap
	}
	return gap
}

// IsTie reports whether both scores are equal.
func (s Snapshot) IsTie() bool {
	return s[0] == s[1]
}

// HistoryEntry is an immutable capture of both teams plus a timestamp,
// appended on every team-level score mutation and at game start.
type HistoryEntry struct {
	ID    string    `json:"id"`
	At    time.Time `json:"at"`
	Teams [2]Team   `json:"teams"`
	Label string    `json:"label,omitempty"`
}

package game

import (
	"time"

	"github.com/google/uuid"

	"genie-scoreboard-service/internal/domain"
)

// Default display identities for a freshly reset board.
const (
	defaultTeamOneName  = "Équipe 1"
	defaultTeamTwoName  = "Équipe 2"
	defaultTeamOneColor = "#e63946"
	defaultTeamTwoColor = "#457b9d"
)

// State is the deep-copied external view of the scoreboard, safe to hand to
// JSON encoders and display clients.
type State struct {
	Phase   domain.Phase          `json:"phase"`
	Teams   [2]domain.Team        `json:"teams"`
	History []domain.HistoryEntry `json:"history"`
}

// Publisher receives the full state after every mutation. Implementations
// must not block; the hub satisfies this with buffered fan-out.
type Publisher interface {
	PublishState(s State)
}

// Stopper abstracts the timers and sequencers the engine cancels on phase
// transitions (countdown, intro, playlist).
type Stopper interface {
	Stop()
}

func defaultTeams(now time.Time) [2]domain.Team {
	return [2]domain.Team{
		{
			ID:             uuid.NewString(),
			Name:           defaultTeamOneName,
			Color:          defaultTeamOneColor,
			Side:           0,
			ScoreUpdatedAt: now,
			Players:        []domain.Player{},
		},
		{
			ID:             uuid.NewString(),
			Name:           defaultTeamTwoName,
			Color:          defaultTeamTwoColor,
			Side:           1,
			ScoreUpdatedAt: now,
			Players:        []domain.Player{},
		},
	}
}

package celebrate

import (
	"time"

	"genie-scoreboard-service/internal/domain"
)

// Position hints for the effect player. The display maps these onto the
// physical layout; side-specific effects follow the team's current side.
type Position string

const (
	PositionCenter Position = "CENTER"
	PositionSide   Position = "SIDE"
)

// AudioCue selects the sound the display should play for a score event.
type AudioCue string

const (
	CuePositive AudioCue = "POSITIVE"
	CueNegative AudioCue = "NEGATIVE"
)

// Invocation is the concrete, fully-parameterized request handed to the
// effect player. Visuals self-expire after Dismiss; the game never waits on
// them.
type Invocation struct {
	Kind      domain.CelebrationKind `json:"kind"`
	Team      int                    `json:"team"`
	Side      int                    `json:"side"`
	Magnitude int                    `json:"magnitude"`
	Band      domain.GapBand         `json:"band,omitempty"`
	Colors    []string               `json:"colors"`
	Position  Position               `json:"position"`
	Particles int                    `json:"particles"`
	Bursts    int                    `json:"bursts"`
	Interval  time.Duration          `json:"interval"`
	Dismiss   time.Duration          `json:"dismiss"`
	Player    string                 `json:"player,omitempty"`
	PlayerID  string                 `json:"playerId,omitempty"`
}

// EffectPlayer renders celebrations and audio cues. Implementations must
// return immediately; visual completion is their own concern.
type EffectPlayer interface {
	Play(inv Invocation)
	Cue(cue AudioCue)
}

// effectProfile is the fixed parameter set for one celebration kind.
type effectProfile struct {
	position  Position
	particles int
	bursts    int
	interval  time.Duration
	dismiss   time.Duration
	spectrum  bool // full-spectrum colors instead of team colors
	bothTeams bool // include both team colors
}

// profiles documents the per-kind effect configuration.
var profiles = map[domain.CelebrationKind]effectProfile{
	domain.CelebrationTie: {
		position:  PositionCenter,
		particles: 120,
		bursts:    1,
		dismiss:   2 * time.Second,
		bothTeams: true,
	},
	domain.CelebrationNewLeader: {
		position:  PositionSide,
		particles: 150,
		bursts:    1,
		dismiss:   2 * time.Second,
	},
	domain.CelebrationComeback: {
		position:  PositionSide,
		particles: 200,
		bursts:    3,
		interval:  350 * time.Millisecond,
		dismiss:   2 * time.Second,
	},
	domain.CelebrationCatchUp: {
		position:  PositionSide,
		particles: 60,
		bursts:    1,
		dismiss:   2 * time.Second,
	},
	domain.CelebrationMilestone: {
		position:  PositionCenter,
		particles: 250,
		bursts:    1,
		dismiss:   3 * time.Second,
		spectrum:  true,
	},
	domain.CelebrationBestScorer: {
		position:  PositionSide,
		particles: 80,
		bursts:    1,
		dismiss:   3 * time.Second,
	},
	domain.CelebrationPlayerScore: {
		position:  PositionSide,
		particles: 0,
		bursts:    0,
		dismiss:   2 * time.Second,
	},
}

// spectrumColors is the palette used for full-spectrum bursts.
var spectrumColors = []string{"#e63946", "#f4a261", "#ffd166", "#2a9d8f", "#457b9d", "#9b5de5"}

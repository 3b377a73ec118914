// Package celebrate turns classifier decisions into concrete effect player
// invocations. Dispatching is fire-and-forget: it never blocks and never
// feeds back into game state.
package celebrate

import (
	"log/slog"

	"genie-scoreboard-service/internal/domain"
	"genie-scoreboard-service/internal/logging"
	"genie-scoreboard-service/internal/metrics"
)

// TeamInfo is the slice of team state the dispatcher needs to parameterize
// an effect: color and current display side.
type TeamInfo struct {
	Color string
	Side  int
}

// Dispatcher maps decisions onto the effect player.
type Dispatcher struct {
	player  EffectPlayer
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewDispatcher constructs a Dispatcher. A nil player disables effects.
func NewDispatcher(player EffectPlayer, logger *slog.Logger, recorder *metrics.Recorder) *Dispatcher {
	return &Dispatcher{player: player, logger: logger, metrics: recorder}
}

// Dispatch fires one decision. teams holds both teams' display info indexed
// by canonical team index.
func (d *Dispatcher) Dispatch(decision *domain.Decision, teams [2]TeamInfo) {
	if decision == nil || d.player == nil {
		return
	}

	profile, ok := profiles[decision.Kind]
	if !ok {
		logging.Warn(d.logger, "unknown celebration kind", logging.FieldKind, string(decision.Kind))
		return
	}

	inv := Invocation{
		Kind:      decision.Kind,
		Team:      decision.Team,
		Side:      teams[decision.Team].Side,
		Magnitude: magnitudeFor(decision),
		Band:      decision.Band,
		Colors:    colorsFor(profile, decision.Team, teams),
		Position:  profile.position,
		Particles: profile.particles,
		Bursts:    profile.bursts,
		Interval:  profile.interval,
		Dismiss:   profile.dismiss,
		Player:    decision.Player,
		PlayerID:  decision.PlayerID,
	}

	d.player.Play(inv)
	if d.metrics != nil {
		d.metrics.RecordCelebration(string(decision.Kind))
	}
	logging.Info(d.logger, "celebration dispatched",
		logging.FieldKind, string(decision.Kind),
		logging.FieldTeam, decision.Team,
		logging.FieldPoints, decision.Points,
	)
}

// CueForPoints plays the positive or negative audio cue for a score delta.
func (d *Dispatcher) CueForPoints(points int) {
	if d.player == nil || points == 0 {
		return
	}
	if points > 0 {
		d.player.Cue(CuePositive)
		return
	}
	d.player.Cue(CueNegative)
}

func magnitudeFor(decision *domain.Decision) int {
	switch decision.Kind {
	case domain.CelebrationComeback, domain.CelebrationCatchUp:
		return decision.Gap
	case domain.CelebrationBestScorer:
		return decision.Points
	default:
		return decision.Points
	}
}

func colorsFor(profile effectProfile, team int, teams [2]TeamInfo) []string {
	if profile.spectrum {
		colors := make([]string, len(spectrumColors))
		copy(colors, spectrumColors)
		return colors
	}
	if profile.bothTeams {
		return []string{teams[0].Color, teams[1].Color}
	}
	return []string{teams[team].Color}
}

// Package classify decides which celebration a score transition earns.
// It is pure apart from the injectable randomness source: every decision is
// derived from the before/after snapshots alone.
package classify

import (
	"genie-scoreboard-service/internal/domain"
)

const (
	// comebackGap is the minimum pre-change deficit that upgrades a
	// leadership change into a comeback.
	comebackGap = 20
	// catchUpGap is the boundary a narrowing gap must cross to earn a
	// catch-up encouragement.
	catchUpGap = 10
	// encouragementChance is the probability of a random encouragement for
	// a trailing team on any positive scoring event.
	encouragementChance = 0.2
)

// Outcome carries the classifier's verdict for one mutation. Primary is the
// single precedence-selected celebration (tie, comeback, new leader or
// catch-up); Milestone is independent and may co-occur with any primary.
type Outcome struct {
	Primary   *domain.Decision
	Milestone *domain.Decision
}

// Classify inspects a two-team score transition and returns which
// celebrations to fire. scorer names the team whose score changed; points is
// the signed delta that was applied.
func Classify(prev, next domain.Snapshot, scorer, points int, rng Rand) Outcome {
	if scorer != 0 && scorer != 1 {
		panic("classify: team index out of range")
	}

	out := Outcome{}

	// Milestone crossing does not consume the primary slot.
	if crossedMilestone(prev[scorer], next[scorer]) {
		out.Milestone = &domain.Decision{
			Kind:   domain.CelebrationMilestone,
			Team:   scorer,
			Points: points,
			Gap:    next.Gap(),
		}
	}

	out.Primary = primaryDecision(prev, next, scorer, points, rng)
	return out
}

func primaryDecision(prev, next domain.Snapshot, scorer, points int, rng Rand) *domain.Decision {
	if next.IsTie() {
		return &domain.Decision{
			Kind:   domain.CelebrationTie,
			Team:   scorer,
			Points: points,
		}
	}

	leaderBefore := prev.WinningTeam()
	leaderAfter := next.WinningTeam()
	if leaderBefore != leaderAfter && leaderAfter != domain.NoLeader {
		kind := domain.CelebrationNewLeader
		if prev.Gap() >= comebackGap {
			kind = domain.CelebrationComeback
		}
		return &domain.Decision{
			Kind:   kind,
			Team:   leaderAfter,
			Points: points,
			Gap:    prev.Gap(),
		}
	}

	opponent := 1 - scorer
	behind := leaderAfter == opponent

	if behind && prev.Gap() >= catchUpGap && next.Gap() < catchUpGap {
		return &domain.Decision{
			Kind:   domain.CelebrationCatchUp,
			Team:   scorer,
			Points: points,
			Gap:    next.Gap(),
			Band:   domain.BandForGap(next.Gap()),
		}
	}

	if behind && points > 0 && rng != nil && rng.Float64() < encouragementChance {
		return &domain.Decision{
			Kind:   domain.CelebrationCatchUp,
			Team:   scorer,
			Points: points,
			Gap:    next.Gap(),
			Band:   domain.BandForGap(next.Gap()),
		}
	}

	return nil
}

// crossedMilestone reports whether the score moved past a higher multiple of
// the milestone step, using floor division so negative scores behave.
func crossedMilestone(prevScore, newScore int) bool {
	return floorDiv(prevScore, domain.MilestoneStep) < floorDiv(newScore, domain.MilestoneStep)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// BestScorer decides whether a per-player delta promoted the player to the
// team's top scorer. It fires only when the tally increased and the
// tie-broken leader changed to this player, so one delta fires at most once.
func BestScorer(before, after domain.Team, playerID string) *domain.Decision {
	prevTop, hadTop := before.TopScorer()
	newTop, hasTop := after.TopScorer()
	if !hasTop || newTop.ID != playerID {
		return nil
	}
	if hadTop && prevTop.ID == playerID {
		return nil
	}
	if tallyOf(before, playerID) >= newTop.PointsScored {
		return nil
	}
	return &domain.Decision{
		Kind:     domain.CelebrationBestScorer,
		Points:   newTop.PointsScored,
		PlayerID: newTop.ID,
		Player:   newTop.Name,
	}
}

func tallyOf(team domain.Team, playerID string) int {
	for _, p := range team.Players {
		if p.ID == playerID {
			return p.PointsScored
		}
	}
	return 0
}

package domain

// CelebrationKind discriminates the celebratory reactions a score event can
// trigger. Tie, NewLeader, Comeback and CatchUp are mutually exclusive per
// mutation; Milestone, BestScorer and PlayerScore are independent.
type CelebrationKind string

const (
	CelebrationTie         CelebrationKind = "TIE"
	CelebrationNewLeader   CelebrationKind = "NEW_LEADER"
	CelebrationComeback    CelebrationKind = "COMEBACK"
	CelebrationCatchUp     CelebrationKind = "CATCH_UP"
	CelebrationMilestone   CelebrationKind = "MILESTONE"
	CelebrationBestScorer  CelebrationKind = "BEST_SCORER"
	CelebrationPlayerScore CelebrationKind = "PLAYER_SCORE"
)

// GapBand classifies the remaining score gap for catch-up messaging.
type GapBand string

const (
	GapSmall  GapBand = "SMALL"  // <= 10
	GapMedium GapBand = "MEDIUM" // 11-20
	GapLarge  GapBand = "LARGE"  // > 20
)

// BandForGap maps an absolute remaining gap to its message band.
func BandForGap(gap int) GapBand {
	if gap < 0 {
		gap = -gap
	}
	switch {
	case gap <= 10:
		return GapSmall
	case gap <= 20:
		return GapMedium
	default:
		return GapLarge
	}
}

// Decision names one celebration to fire, with the facts the dispatcher
// needs to parameterize the effect.
type Decision struct {
	Kind     CelebrationKind `json:"kind"`
	Team     int             `json:"team"`
	Points   int             `json:"points"`
	Gap      int             `json:"gap"`
	Band     GapBand         `json:"band,omitempty"`
	PlayerID string          `json:"playerId,omitempty"`
	Player   string          `json:"player,omitempty"`
}

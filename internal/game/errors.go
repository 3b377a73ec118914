package game

import "errors"

var (
	// ErrEmptyName rejects blank player names; callers treat it as a
	// silent no-op.
	ErrEmptyName = errors.New("player name required")
	// ErrPlayerNotFound signals an unknown player ID on a roster.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrWrongPhase signals a lifecycle operation outside its phase.
	ErrWrongPhase = errors.New("operation not allowed in current phase")
)

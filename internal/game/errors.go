package game

import (
	"errors"
	"fmt"
)

// Configuration errors abort hand setup before any chips or cards move.
var (
	ErrTooFewPlayers   = errors.New("game: at least 2 active players required")
	ErrInvalidBlinds   = errors.New("game: blinds must be positive integers")
	ErrInvalidBetLimit = errors.New("game: bet limit must be a positive integer")
	ErrInvalidSeat     = errors.New("game: seat index out of range")
)

// Structural errors mean the hand cannot meaningfully continue.
var (
	ErrDeckExhausted = errors.New("game: deck exhausted during draw")
	ErrConservation  = errors.New("game: chip conservation violated")
	ErrHandComplete  = errors.New("game: hand already complete")
)

// IllegalActionError rejects a player action with a specific reason. The
// engine never silently reinterprets an illegal action as a different one.
type IllegalActionError struct {
	PlayerID string
	Action   Action
	Reason   string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("game: illegal action %s by %s: %s", e.Action, e.PlayerID, e.Reason)
}

func illegalAction(playerID string, action Action, format string, args ...any) error {
	return &IllegalActionError{
		PlayerID: playerID,
		Action:   action,
		Reason:   fmt.Sprintf(format, args...),
	}
}

package game

import (
	"context"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
)

// Decision is a betting decision returned by a PlayerAgent. Amount is the
// total bet level for the round and is only consulted outside limit
// betting; under limit betting the engine knows the required size.
type Decision struct {
	Action Action
	Amount int
}

// DrawDecision lists the hand indices (0 through 4) to discard. An empty
// list stands pat.
type DrawDecision struct {
	Discard []int
}

// PublicPlayer is the externally visible state of one seat.
type PublicPlayer struct {
	ID         string
	Seat       int
	Chips      int
	Bet        int
	State      PlayerState
	HasActed   bool
	LastAction Action
}

// Snapshot is the read-only view handed to an agent when a decision is
// requested. The recipient's own cards are included; no other player's
// cards ever appear here.
type Snapshot struct {
	HandID         string
	Phase          Phase
	Pot            int
	CurrentBet     int
	ToCall         int
	BetLimit       int
	ValidActions   []Action
	DrawsRemaining int
	Seat           int
	Button         int
	Cards          []deck.Card
	Players        []PublicPlayer
}

// PlayerAgent supplies decisions for one seat. GetAction and GetDrawAction
// may suspend on the context; the engine races them against its turn timer
// and falls back to a fold or a stand pat on timeout. ReceivePrivateCards
// is a notification, sent after the initial deal and after each draw.
type PlayerAgent interface {
	GetAction(ctx context.Context, snap Snapshot) (Decision, error)
	GetDrawAction(ctx context.Context, snap Snapshot) (DrawDecision, error)
	ReceivePrivateCards(cards []deck.Card)
}

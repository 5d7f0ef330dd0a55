package bot

import (
	"context"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
	"github.com/jkraybill/triple-draw-manager/internal/game"
)

// RandBot makes uniform random legal actions and random draws. Useful for
// fuzzing the engine: whatever it does must be legal, so any rejection is
// an engine bug.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger.WithPrefix("randbot")}
}

func (r *RandBot) GetAction(_ context.Context, snap game.Snapshot) (game.Decision, error) {
	if len(snap.ValidActions) == 0 {
		return game.Decision{Action: game.Fold}, nil
	}
	action := snap.ValidActions[r.rng.Intn(len(snap.ValidActions))]
	r.logger.Debug("decision", "phase", snap.Phase, "action", action)
	return game.Decision{Action: action}, nil
}

func (r *RandBot) GetDrawAction(_ context.Context, snap game.Snapshot) (game.DrawDecision, error) {
	count := r.rng.Intn(4) // 0 through 3 cards
	indices := r.rng.Perm(5)[:count]
	return game.DrawDecision{Discard: indices}, nil
}

func (r *RandBot) ReceivePrivateCards(cards []deck.Card) {}

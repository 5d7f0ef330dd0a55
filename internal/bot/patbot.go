package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
	"github.com/jkraybill/triple-draw-manager/internal/game"
)

// PatBot stands pat on every draw and plays the passive line. It is the
// cheapest possible opponent that still reaches showdown.
type PatBot struct {
	logger *log.Logger
}

// NewPatBot creates a new PatBot instance
func NewPatBot(logger *log.Logger) *PatBot {
	return &PatBot{logger: logger.WithPrefix("patbot")}
}

func (p *PatBot) GetAction(_ context.Context, snap game.Snapshot) (game.Decision, error) {
	return checkOrCall(snap.ValidActions), nil
}

func (p *PatBot) GetDrawAction(_ context.Context, _ game.Snapshot) (game.DrawDecision, error) {
	return game.DrawDecision{}, nil
}

func (p *PatBot) ReceivePrivateCards(cards []deck.Card) {}

package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
	"github.com/jkraybill/triple-draw-manager/internal/game"
)

// CallBot never initiates action. It checks when it can, calls when it
// must, and draws at a smooth low.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot instance
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger.WithPrefix("callbot")}
}

func (c *CallBot) GetAction(_ context.Context, snap game.Snapshot) (game.Decision, error) {
	dec := checkOrCall(snap.ValidActions)
	c.logger.Debug("decision", "phase", snap.Phase, "action", dec.Action, "to_call", snap.ToCall)
	return dec, nil
}

func (c *CallBot) GetDrawAction(_ context.Context, snap game.Snapshot) (game.DrawDecision, error) {
	discard := lowballDiscards(snap.Cards)
	c.logger.Debug("draw", "phase", snap.Phase, "discarding", len(discard))
	return game.DrawDecision{Discard: discard}, nil
}

func (c *CallBot) ReceivePrivateCards(cards []deck.Card) {}

package game

import (
	"context"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
)

// scriptAgent plays a fixed sequence of decisions, then falls back to
// check-or-call and standing pat once its script runs out.
type scriptAgent struct {
	decisions []Decision
	draws     []DrawDecision
	cards     []deck.Card
}

func (a *scriptAgent) GetAction(_ context.Context, snap Snapshot) (Decision, error) {
	if len(a.decisions) > 0 {
		d := a.decisions[0]
		a.decisions = a.decisions[1:]
		return d, nil
	}
	if containsAction(snap.ValidActions, Check) {
		return Decision{Action: Check}, nil
	}
	return Decision{Action: Call}, nil
}

func (a *scriptAgent) GetDrawAction(_ context.Context, _ Snapshot) (DrawDecision, error) {
	if len(a.draws) > 0 {
		d := a.draws[0]
		a.draws = a.draws[1:]
		return d, nil
	}
	return DrawDecision{}, nil
}

func (a *scriptAgent) ReceivePrivateCards(cards []deck.Card) {
	a.cards = cards
}

// blockingAgent never answers until its context is cancelled. Used to
// exercise the decision timer.
type blockingAgent struct{}

func (blockingAgent) GetAction(ctx context.Context, _ Snapshot) (Decision, error) {
	<-ctx.Done()
	return Decision{}, ctx.Err()
}

func (blockingAgent) GetDrawAction(ctx context.Context, _ Snapshot) (DrawDecision, error) {
	<-ctx.Done()
	return DrawDecision{}, ctx.Err()
}

func (blockingAgent) ReceivePrivateCards([]deck.Card) {}

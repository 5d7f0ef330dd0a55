package game

import (
	"fmt"
	"strings"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
)

// PlayerState is the lifecycle state of a player within a hand.
type PlayerState int

const (
	StateActive PlayerState = iota
	StateFolded
	StateAllIn
	StateSittingOut
	StateDisconnected
)

// String returns the string representation of a player state
func (s PlayerState) String() string {
	return [...]string{"active", "folded", "allin", "sitting_out", "disconnected"}[s]
}

// Player holds the mutable chip and bet state for one seat. The engine owns
// all mutation for the duration of a hand; nothing else may touch these
// fields while a hand is in progress.
type Player struct {
	ID         string
	Chips      int
	Bet        int // chips committed in the current betting round
	TotalBet   int // chips committed over the whole hand
	State      PlayerState
	HasActed   bool
	LastAction Action

	cards []deck.Card
}

// NewPlayer creates a player. Identity is a constructor-time invariant: the
// ID must be a non-empty scalar string, never a structured value to be
// coerced downstream.
func NewPlayer(id string, chips int) (*Player, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("game: player id must be a non-empty string")
	}
	return &Player{ID: id, Chips: chips, State: StateActive}, nil
}

// Cards returns a copy of the player's current hand.
func (p *Player) Cards() []deck.Card {
	cards := make([]deck.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// InHand reports whether the player still has a claim on the pot.
func (p *Player) InHand() bool {
	return p.State == StateActive || p.State == StateAllIn
}

// CanAct reports whether the player takes betting turns.
func (p *Player) CanAct() bool {
	return p.State == StateActive
}

package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
)

type handConfig struct {
	smallBlind         int
	bigBlind           int
	timeout            time.Duration
	limitBetting       bool
	betLimit           int
	fixedPositions     bool
	allowNegativeChips bool
	dealerButton       int // -1 selects a random button
	simulationMode     bool
	deadButton         bool
	deadSmallBlind     bool
	smallBlindSeat     int // -1 derives the seat from the button
	bigBlindSeat       int
	deck               *deck.Deck
	clock              quartz.Clock
	logger             *log.Logger
	bus                *EventBus
}

func defaultConfig() handConfig {
	return handConfig{
		smallBlind:     5,
		bigBlind:       10,
		timeout:        10 * time.Second,
		limitBetting:   true,
		dealerButton:   -1,
		smallBlindSeat: -1,
		bigBlindSeat:   -1,
	}
}

// Option configures a hand at construction time.
type Option func(*handConfig)

// WithBlinds sets the small and big blind amounts.
func WithBlinds(small, big int) Option {
	return func(c *handConfig) {
		c.smallBlind = small
		c.bigBlind = big
	}
}

// WithTimeout sets the per-decision deadline. Zero or negative disables the
// timer and waits indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(c *handConfig) {
		c.timeout = d
	}
}

// WithLimitBetting toggles fixed-limit betting. It defaults to on; turning
// it off allows arbitrary bet sizes and the all-in action.
func WithLimitBetting(enabled bool) Option {
	return func(c *handConfig) {
		c.limitBetting = enabled
	}
}

// WithBetLimit sets the fixed bet and raise size for limit betting. It
// defaults to the big blind.
func WithBetLimit(limit int) Option {
	return func(c *handConfig) {
		c.betLimit = limit
	}
}

// WithFixedPositions suppresses random button placement: without an
// explicit WithDealerButton the button rests on seat 0, so repeated hands
// built from the same seats keep the same positions.
func WithFixedPositions() Option {
	return func(c *handConfig) {
		c.fixedPositions = true
	}
}

// WithNegativeChips switches chip accounting to signed mode, letting stacks
// go negative instead of forcing all-in. Intended for simulations.
func WithNegativeChips() Option {
	return func(c *handConfig) {
		c.allowNegativeChips = true
	}
}

// WithDealerButton pins the button to a seat instead of choosing randomly.
func WithDealerButton(seat int) Option {
	return func(c *handConfig) {
		c.dealerButton = seat
	}
}

// WithSimulationMode disables the decision timer and calls agents
// synchronously. Deterministic given a seeded rng and deck.
func WithSimulationMode() Option {
	return func(c *handConfig) {
		c.simulationMode = true
	}
}

// WithBlindSeats pins the blinds to explicit seats, overriding the usual
// derivation from the button. Pass -1 for smallBlindSeat together with
// WithDeadSmallBlind to skip the small blind entirely.
func WithBlindSeats(smallBlindSeat, bigBlindSeat int) Option {
	return func(c *handConfig) {
		c.smallBlindSeat = smallBlindSeat
		c.bigBlindSeat = bigBlindSeat
	}
}

// WithDeadButton marks the button as resting on a seat that is out of the
// hand. Position rotation is the caller's concern; the flag only affects
// how the hand reports positions.
func WithDeadButton() Option {
	return func(c *handConfig) {
		c.deadButton = true
	}
}

// WithDeadSmallBlind skips posting the small blind for this hand, as when
// the player owing it busted on the previous one.
func WithDeadSmallBlind() Option {
	return func(c *handConfig) {
		c.deadSmallBlind = true
	}
}

// WithDeck supplies a prepared deck, usually a stacked one in tests.
func WithDeck(d *deck.Deck) Option {
	return func(c *handConfig) {
		c.deck = d
	}
}

// WithClock injects the clock used for the decision timer and event
// timestamps.
func WithClock(clk quartz.Clock) Option {
	return func(c *handConfig) {
		c.clock = clk
	}
}

// WithLogger sets the hand's logger.
func WithLogger(l *log.Logger) Option {
	return func(c *handConfig) {
		c.logger = l
	}
}

// WithEventBus shares an existing bus instead of creating a private one.
func WithEventBus(b *EventBus) Option {
	return func(c *handConfig) {
		c.bus = b
	}
}

package game

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func newTestPlayer(t *testing.T, id string, chips int) *Player {
	t.Helper()
	p, err := NewPlayer(id, chips)
	require.NoError(t, err)
	return p
}

func stacked(cards string) *deck.Deck {
	return deck.NewStacked(testRNG(), deck.MustParseCards(cards))
}

func TestNewHandConfigErrors(t *testing.T) {
	t.Parallel()

	a := newTestPlayer(t, "a", 1000)
	b := newTestPlayer(t, "b", 1000)
	seats := []Seat{{a, &scriptAgent{}}, {b, &scriptAgent{}}}

	_, err := NewHand(nil, seats)
	assert.Error(t, err)

	_, err = NewHand(testRNG(), seats, WithBlinds(0, 10))
	assert.ErrorIs(t, err, ErrInvalidBlinds)

	_, err = NewHand(testRNG(), seats, WithBetLimit(-1))
	assert.ErrorIs(t, err, ErrInvalidBetLimit)

	_, err = NewHand(testRNG(), seats, WithDealerButton(9))
	assert.ErrorIs(t, err, ErrInvalidSeat)

	_, err = NewHand(testRNG(), []Seat{{a, &scriptAgent{}}})
	assert.ErrorIs(t, err, ErrTooFewPlayers)
}

func TestUncontestedWin(t *testing.T) {
	t.Parallel()

	a := newTestPlayer(t, "a", 1000)
	b := newTestPlayer(t, "b", 1000)

	// Heads-up the button posts the small blind and acts first; a fold
	// ends the hand with no showdown and no cards revealed.
	h, err := NewHand(testRNG(), []Seat{
		{a, &scriptAgent{decisions: []Decision{{Action: Fold}}}},
		{b, &scriptAgent{}},
	}, WithDealerButton(0), WithSimulationMode())
	require.NoError(t, err)

	var ended HandEndedEvent
	h.Bus().Subscribe(EventFunc(func(e Event) {
		if ev, ok := e.(HandEndedEvent); ok {
			ended = ev
		}
	}))

	res, err := h.Run()
	require.NoError(t, err)

	assert.True(t, res.Uncontested)
	require.Len(t, res.Winners, 1)
	assert.Equal(t, "b", res.Winners[0].PlayerID)
	assert.Equal(t, 15, res.Winners[0].Amount)
	assert.Equal(t, 995, a.Chips)
	assert.Equal(t, 1005, b.Chips)
	assert.Empty(t, ended.Showdown)
	assert.Equal(t, Ended, h.Phase())
}

func TestFullHandToShowdown(t *testing.T) {
	t.Parallel()

	a := newTestPlayer(t, "a", 1000)
	b := newTestPlayer(t, "b", 1000)
	c := newTestPlayer(t, "c", 1000)

	// Button on seat 0: b posts small, c posts big, a acts first. Everyone
	// calls down and stands pat; b's wheel takes the pot.
	d := stacked("Kc Kd 9h 7s 2c " + // a: pair of kings
		"7c 5d 4h 3s 2d " + // b: the wheel
		"9c 8d 6h 4s 3c") // c: nine low

	h, err := NewHand(testRNG(), []Seat{
		{a, &scriptAgent{}},
		{b, &scriptAgent{}},
		{c, &scriptAgent{}},
	}, WithDealerButton(0), WithSimulationMode(), WithDeck(d))
	require.NoError(t, err)

	res, err := h.Run()
	require.NoError(t, err)

	assert.False(t, res.Uncontested)
	require.Len(t, res.Winners, 1)
	assert.Equal(t, "b", res.Winners[0].PlayerID)
	assert.Equal(t, 30, res.Winners[0].Amount)
	assert.Equal(t, "7-5-4-3-2, the wheel", res.Winners[0].Description)

	assert.Equal(t, 990, a.Chips)
	assert.Equal(t, 1020, b.Chips)
	assert.Equal(t, 990, c.Chips)
	assert.Equal(t, 3000, a.Chips+b.Chips+c.Chips)
}

func TestDrawReplacesDiscardedCards(t *testing.T) {
	t.Parallel()

	a := newTestPlayer(t, "a", 1000)
	b := newTestPlayer(t, "b", 1000)

	agentA := &scriptAgent{draws: []DrawDecision{{Discard: []int{0, 2}}}}
	agentB := &scriptAgent{}

	d := stacked("Kc Qd Jh 9s 8c " + // a
		"7c 5d 4h 3s 2c " + // b
		"2d 3d") // a's replacements on the first draw

	h, err := NewHand(testRNG(), []Seat{
		{a, agentA},
		{b, agentB},
	}, WithDealerButton(0), WithSimulationMode(), WithDeck(d))
	require.NoError(t, err)

	res, err := h.Run()
	require.NoError(t, err)

	// Kept cards stay in order, replacements append after them.
	want := deck.MustParseCards("Qd 9s 8c 2d 3d")
	assert.Equal(t, want, agentA.cards)

	// Nothing a discarded may resurface in either hand.
	seen := make(map[deck.Card]bool)
	for _, card := range append(agentA.cards, agentB.cards...) {
		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}

	require.Len(t, res.Winners, 1)
	assert.Equal(t, "b", res.Winners[0].PlayerID)
}

func TestLimitRaiseCap(t *testing.T) {
	t.Parallel()

	a := newTestPlayer(t, "a", 1000)
	b := newTestPlayer(t, "b", 1000)

	// Heads-up raising war pre-draw: four raises cap the round, after
	// which the player facing the bet may only fold or call.
	agentA := &scriptAgent{decisions: []Decision{
		{Action: Raise}, {Action: Raise}, {Action: Raise}, // third is the fifth aggressive action, rejected
	}}
	agentB := &scriptAgent{decisions: []Decision{
		{Action: Raise}, {Action: Raise},
	}}

	h, err := NewHand(testRNG(), []Seat{
		{a, agentA},
		{b, agentB},
	}, WithDealerButton(0), WithSimulationMode())
	require.NoError(t, err)

	var lastToAct PlayerToActEvent
	var preDrawPot int
	raises := 0
	h.Bus().Subscribe(EventFunc(func(e Event) {
		switch ev := e.(type) {
		case PlayerToActEvent:
			if ev.Phase == PreDraw {
				lastToAct = ev
			}
		case PlayerActedEvent:
			if ev.Action == Raise {
				raises++
			}
		case BettingRoundEndedEvent:
			if ev.Phase == PreDraw {
				preDrawPot = ev.Pot
			}
		}
	}))

	_, err = h.Run()
	require.NoError(t, err)

	assert.Equal(t, 4, raises)
	assert.Equal(t, "a", lastToAct.PlayerID)
	assert.Equal(t, []Action{Fold, Call}, lastToAct.ValidActions)

	// Blinds 5/10, limit 10: both reached 50 before the cap closed the
	// round, so the fifth raise attempt became a call.
	assert.Equal(t, 100, preDrawPot)
	assert.Equal(t, 2000, a.Chips+b.Chips)
}

func TestBettingTimeoutForcesFold(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mock := quartz.NewMock(t)
	trap := mock.Trap().AfterFunc()
	defer trap.Close()

	a := newTestPlayer(t, "a", 1000)
	b := newTestPlayer(t, "b", 1000)

	h, err := NewHand(testRNG(), []Seat{
		{a, blockingAgent{}},
		{b, &scriptAgent{}},
	}, WithDealerButton(0), WithTimeout(5*time.Second), WithClock(mock))
	require.NoError(t, err)

	timeouts := 0
	h.Bus().Subscribe(EventFunc(func(e Event) {
		if _, ok := e.(PlayerTimeoutEvent); ok {
			timeouts++
		}
	}))

	done := make(chan *Result, 1)
	errs := make(chan error, 1)
	go func() {
		res, err := h.Run()
		errs <- err
		done <- res
	}()

	call := trap.MustWait(ctx)
	call.MustRelease(ctx)
	mock.Advance(5 * time.Second).MustWait(ctx)

	require.NoError(t, <-errs)
	res := <-done

	assert.Equal(t, 1, timeouts)
	assert.True(t, res.Uncontested)
	require.Len(t, res.Winners, 1)
	assert.Equal(t, "b", res.Winners[0].PlayerID)
	assert.Equal(t, StateFolded, a.State)
}

func TestNegativeChipMode(t *testing.T) {
	t.Parallel()

	// Tiny stacks with signed accounting: nobody goes all-in, balances
	// just go negative, and the books still balance.
	a := newTestPlayer(t, "a", 8)
	b := newTestPlayer(t, "b", 8)

	h, err := NewHand(testRNG(), []Seat{
		{a, &scriptAgent{decisions: []Decision{{Action: Raise}}}},
		{b, &scriptAgent{}},
	}, WithDealerButton(0), WithSimulationMode(), WithNegativeChips())
	require.NoError(t, err)

	res, err := h.Run()
	require.NoError(t, err)

	assert.NotEqual(t, StateAllIn, a.State)
	assert.NotEqual(t, StateAllIn, b.State)
	assert.Equal(t, 16, a.Chips+b.Chips)
	assert.NotNil(t, res)
}

func TestAllInShortCallCreatesSidePot(t *testing.T) {
	t.Parallel()

	// a can only cover part of the betting; the hand still settles with
	// every chip accounted for and a capped main pot.
	a := newTestPlayer(t, "a", 15)
	b := newTestPlayer(t, "b", 1000)
	c := newTestPlayer(t, "c", 1000)

	agentC := &scriptAgent{decisions: []Decision{{Action: Raise}}}

	d := stacked("9c 8d 6h 4s 3c " + // a: nine low, best hand
		"Kc Kd 9h 7s 2c " + // b: pair of kings
		"Qc Td 8h 6s 2d") // c: queen low

	h, err := NewHand(testRNG(), []Seat{
		{a, &scriptAgent{}},
		{b, &scriptAgent{}},
		{c, agentC},
	}, WithDealerButton(0), WithSimulationMode(), WithDeck(d))
	require.NoError(t, err)

	res, err := h.Run()
	require.NoError(t, err)

	assert.Equal(t, StateAllIn, a.State)
	require.NotEmpty(t, res.Winners)

	// a wins only the capped main pot; the side pot goes to c, whose
	// queen low beats b's pair.
	assert.Equal(t, 45, res.Payouts["a"])
	assert.Equal(t, 10, res.Payouts["c"])
	assert.Equal(t, 45, a.Chips)
	assert.Equal(t, 980, b.Chips)
	assert.Equal(t, 990, c.Chips)
	assert.Equal(t, 2015, a.Chips+b.Chips+c.Chips)
}

func TestShortAllInRaiseClampsBettingLevel(t *testing.T) {
	t.Parallel()

	// b raises all-in for less than a full raise while the only other
	// contender is c. The betting level clamps to what b could fund, so c
	// owes 5, not the full raise, and every chip stays accounted for.
	a := newTestPlayer(t, "a", 1000)
	b := newTestPlayer(t, "b", 15)
	c := newTestPlayer(t, "c", 1000)

	d := stacked("Kc Qd Jh 9s 8c " + // a, folds before the draw
		"7c 5d 4h 3s 2c " + // b: the wheel
		"9c 8d 6h 4s 3d") // c: nine low

	h, err := NewHand(testRNG(), []Seat{
		{a, &scriptAgent{decisions: []Decision{{Action: Fold}}}},
		{b, &scriptAgent{decisions: []Decision{{Action: Raise}}}},
		{c, &scriptAgent{}},
	}, WithDealerButton(0), WithSimulationMode(), WithDeck(d))
	require.NoError(t, err)

	var lastToAct PlayerToActEvent
	h.Bus().Subscribe(EventFunc(func(e Event) {
		if ev, ok := e.(PlayerToActEvent); ok && ev.Phase == PreDraw {
			lastToAct = ev
		}
	}))

	res, err := h.Run()
	require.NoError(t, err)

	// With everyone else folded or all-in, c cannot reopen the betting.
	assert.Equal(t, "c", lastToAct.PlayerID)
	assert.Equal(t, []Action{Fold, Call}, lastToAct.ValidActions)
	assert.Equal(t, 5, lastToAct.ToCall)

	require.Len(t, res.Winners, 1)
	assert.Equal(t, "b", res.Winners[0].PlayerID)
	assert.Equal(t, 30, res.Winners[0].Amount)

	pots := h.Ledger().Pots()
	require.Len(t, pots, 1)
	assert.Equal(t, 15, pots[0].Cap)
	assert.False(t, pots[0].Active)

	assert.Equal(t, 1000, a.Chips)
	assert.Equal(t, 30, b.Chips)
	assert.Equal(t, 985, c.Chips)
	assert.Equal(t, 2015, a.Chips+b.Chips+c.Chips)
}

func TestDeadSmallBlindSkipsPosting(t *testing.T) {
	t.Parallel()

	a := newTestPlayer(t, "a", 1000)
	b := newTestPlayer(t, "b", 1000)
	c := newTestPlayer(t, "c", 1000)

	h, err := NewHand(testRNG(), []Seat{
		{a, &scriptAgent{decisions: []Decision{{Action: Fold}}}},
		{b, &scriptAgent{decisions: []Decision{{Action: Fold}}}},
		{c, &scriptAgent{}},
	}, WithDealerButton(0), WithBlindSeats(-1, 2), WithDeadSmallBlind(), WithSimulationMode())
	require.NoError(t, err)

	blinds := 0
	h.Bus().Subscribe(EventFunc(func(e Event) {
		if _, ok := e.(BlindPostedEvent); ok {
			blinds++
		}
	}))

	res, err := h.Run()
	require.NoError(t, err)

	assert.Equal(t, 1, blinds)
	assert.True(t, res.Uncontested)
	// c gets its own big blind back; nobody else paid anything.
	assert.Equal(t, 1000, a.Chips)
	assert.Equal(t, 1000, b.Chips)
	assert.Equal(t, 1000, c.Chips)
}

func TestDeckExhaustionSurfacesSentinel(t *testing.T) {
	t.Parallel()

	a := newTestPlayer(t, "a", 1000)
	b := newTestPlayer(t, "b", 1000)

	// Exactly enough cards to deal: the first replacement request runs the
	// stock dry, and callers must be able to match the error by sentinel.
	d := stacked("Kc Qd Jh 9s 8c " +
		"7c 5d 4h 3s 2c")

	h, err := NewHand(testRNG(), []Seat{
		{a, &scriptAgent{draws: []DrawDecision{{Discard: []int{0}}}}},
		{b, &scriptAgent{}},
	}, WithDealerButton(0), WithSimulationMode(), WithDeck(d))
	require.NoError(t, err)

	_, err = h.Run()
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestHandRunsOnlyOnce(t *testing.T) {
	t.Parallel()

	a := newTestPlayer(t, "a", 1000)
	b := newTestPlayer(t, "b", 1000)

	h, err := NewHand(testRNG(), []Seat{
		{a, &scriptAgent{decisions: []Decision{{Action: Fold}}}},
		{b, &scriptAgent{}},
	}, WithDealerButton(0), WithSimulationMode())
	require.NoError(t, err)

	_, err = h.Run()
	require.NoError(t, err)

	_, err = h.Run()
	assert.ErrorIs(t, err, ErrHandComplete)
}

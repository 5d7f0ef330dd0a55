package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
	"github.com/jkraybill/triple-draw-manager/internal/evaluator"
)

// Seat pairs a player's mutable state with the agent deciding for it.
type Seat struct {
	Player *Player
	Agent  PlayerAgent
}

// Result summarizes a completed hand.
type Result struct {
	HandID      string
	Winners     []Winner
	Pot         int
	Uncontested bool
	Payouts     map[string]int
}

// Hand drives a single deuce-to-seven triple draw hand through its phase
// ladder: four betting rounds interleaved with three draw phases, then
// showdown. A Hand plays exactly once; construct a new one per deal.
type Hand struct {
	id      string
	cfg     handConfig
	logger  *log.Logger
	clock   quartz.Clock
	deck    *deck.Deck
	bus     *EventBus
	chips   ChipPolicy
	ledger  *PotLedger
	players []*Player
	agents  []PlayerAgent
	betting BettingState
	phase   Phase

	button         int
	smallBlindSeat int
	bigBlindSeat   int
	drawsRemaining int
	discards       []deck.Card
	startTotal     int
	result         *Result
}

// NewHand wires a hand from the given seats. Configuration errors are
// returned before any chips or cards move. The rng drives button selection
// and the default deck shuffle and is required.
func NewHand(rng *rand.Rand, seats []Seat, opts ...Option) (*Hand, error) {
	if rng == nil {
		return nil, fmt.Errorf("game: rng is required")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.smallBlind <= 0 || cfg.bigBlind <= 0 {
		return nil, ErrInvalidBlinds
	}
	if cfg.betLimit == 0 {
		cfg.betLimit = cfg.bigBlind
	}
	if cfg.betLimit < 0 {
		return nil, ErrInvalidBetLimit
	}

	players := make([]*Player, len(seats))
	agents := make([]PlayerAgent, len(seats))
	active := 0
	for i, s := range seats {
		if s.Player == nil || s.Agent == nil {
			return nil, fmt.Errorf("game: seat %d needs both a player and an agent", i)
		}
		players[i] = s.Player
		agents[i] = s.Agent
		if s.Player.State == StateActive {
			active++
		}
	}
	if active < 2 {
		return nil, ErrTooFewPlayers
	}

	button := cfg.dealerButton
	if button >= len(seats) {
		return nil, ErrInvalidSeat
	}
	if button < 0 {
		if cfg.fixedPositions {
			button = 0
		} else {
			button = rng.Intn(len(seats))
		}
	}

	h := &Hand{
		id:      uuid.NewString(),
		cfg:     cfg,
		clock:   cfg.clock,
		deck:    cfg.deck,
		bus:     cfg.bus,
		chips:   NewChipPolicy(cfg.allowNegativeChips),
		players: players,
		agents:  agents,
		phase:   Waiting,
		button:  button,
	}
	if h.clock == nil {
		h.clock = quartz.NewReal()
	}
	if h.deck == nil {
		h.deck = deck.New(rng)
	}
	if h.bus == nil {
		h.bus = NewEventBus()
	}
	if cfg.logger != nil {
		h.logger = cfg.logger.With("hand", h.id[:8])
	} else {
		h.logger = log.New(io.Discard)
	}

	inHand := make([]string, 0, active)
	for _, p := range players {
		if p.State == StateActive {
			inHand = append(inHand, p.ID)
		}
	}
	h.ledger = NewPotLedger(inHand)

	return h, nil
}

// ID returns the hand's unique identifier.
func (h *Hand) ID() string { return h.id }

// Phase returns the current phase.
func (h *Hand) Phase() Phase { return h.phase }

// Bus returns the event bus for subscribing to hand events.
func (h *Hand) Bus() *EventBus { return h.bus }

// Ledger exposes the pot ledger, mainly for observers and tests.
func (h *Hand) Ledger() *PotLedger { return h.ledger }

// Result returns the settlement once the hand has ended, nil before.
func (h *Hand) Result() *Result { return h.result }

// Run plays the hand to completion and returns the settlement. Structural
// errors (deck exhaustion, conservation violations) abort the hand.
func (h *Hand) Run() (*Result, error) {
	if h.phase != Waiting {
		return nil, ErrHandComplete
	}
	if err := h.start(); err != nil {
		return nil, err
	}

	for h.phase != Ended {
		switch {
		case h.phase.IsBetting():
			if err := h.runBettingRound(); err != nil {
				return nil, err
			}
			h.advance()
		case h.phase.IsDraw():
			if err := h.runDrawPhase(); err != nil {
				return nil, err
			}
			h.advance()
		default: // Showdown
			if err := h.settle(); err != nil {
				return nil, err
			}
			h.phase = Ended
		}
	}
	return h.result, nil
}

func (h *Hand) start() error {
	h.phase = PreDraw
	h.drawsRemaining = 3
	h.startTotal = h.totalChips()
	h.assignBlindSeats()

	h.logger.Info("hand starting",
		"players", len(h.players),
		"button", h.button,
		"small_blind", h.cfg.smallBlind,
		"big_blind", h.cfg.bigBlind)

	h.publish(HandStartedEvent{
		baseEvent:      h.stamp(),
		HandID:         h.id,
		Players:        h.publicPlayers(),
		Button:         h.button,
		SmallBlindSeat: h.smallBlindSeat,
		BigBlindSeat:   h.bigBlindSeat,
	})

	if !h.cfg.deadSmallBlind && h.smallBlindSeat >= 0 {
		h.postBlind(h.players[h.smallBlindSeat], h.cfg.smallBlind, "small")
	}
	h.postBlind(h.players[h.bigBlindSeat], h.cfg.bigBlind, "big")

	return h.deal()
}

// assignBlindSeats derives blind positions from the button unless explicit
// seats were configured. Heads-up the button posts the small blind.
func (h *Hand) assignBlindSeats() {
	if h.cfg.bigBlindSeat >= 0 {
		h.smallBlindSeat = h.cfg.smallBlindSeat
		h.bigBlindSeat = h.cfg.bigBlindSeat
		return
	}
	if h.activeCount() == 2 && !h.cfg.deadButton {
		h.smallBlindSeat = h.nextActingSeat(h.button)
		h.bigBlindSeat = h.nextActingSeat(h.smallBlindSeat + 1)
		return
	}
	h.smallBlindSeat = h.nextActingSeat(h.button + 1)
	h.bigBlindSeat = h.nextActingSeat(h.smallBlindSeat + 1)
}

func (h *Hand) postBlind(p *Player, amount int, blind string) {
	paid := h.commit(p, amount)
	h.logger.Debug("blind posted", "player", p.ID, "blind", blind, "amount", paid)
	h.publish(BlindPostedEvent{
		baseEvent: h.stamp(),
		PlayerID:  p.ID,
		Amount:    paid,
		Blind:     blind,
	})
}

func (h *Hand) deal() error {
	dealt := make([]string, 0, len(h.players))
	for seat, p := range h.players {
		if !p.InHand() {
			continue
		}
		cards, err := h.deck.DrawMultiple(5)
		if err != nil {
			return fmt.Errorf("%w: dealing to %s: %v", ErrDeckExhausted, p.ID, err)
		}
		p.cards = cards
		h.agents[seat].ReceivePrivateCards(p.Cards())
		dealt = append(dealt, p.ID)
	}
	h.publish(CardsDealtEvent{baseEvent: h.stamp(), HandID: h.id, PlayerIDs: dealt})
	return nil
}

func (h *Hand) runBettingRound() error {
	h.betting.reset()
	if h.phase == PreDraw {
		// Blinds are live: the big blind sets the level to call.
		h.betting.CurrentBet = h.cfg.bigBlind
	}
	for _, p := range h.players {
		if p.CanAct() {
			p.HasActed = false
		}
	}
	h.publish(BettingRoundStartedEvent{baseEvent: h.stamp(), Phase: h.phase, Pot: h.ledger.Total()})

	seat := h.nextActingSeat(h.bigBlindSeat + 1)
	for seat >= 0 && !h.bettingComplete() {
		p := h.players[seat]
		snap := h.snapshotFor(seat)
		h.publish(PlayerToActEvent{
			baseEvent:    h.stamp(),
			PlayerID:     p.ID,
			Phase:        h.phase,
			ValidActions: snap.ValidActions,
			Pot:          snap.Pot,
			CurrentBet:   snap.CurrentBet,
			ToCall:       snap.ToCall,
		})

		dec, timedOut := h.requestAction(seat, snap)
		if timedOut {
			h.forceFold(p)
		} else if err := h.applyAction(p, dec); err != nil {
			var ill *IllegalActionError
			if !errors.As(err, &ill) {
				return err
			}
			h.logger.Warn("action rejected", "player", p.ID, "reason", ill.Reason)
			// One retry with a fresh snapshot, then a forced fold.
			dec, timedOut = h.requestAction(seat, h.snapshotFor(seat))
			if timedOut {
				h.forceFold(p)
			} else if err := h.applyAction(p, dec); err != nil {
				h.logger.Warn("second action rejected, folding", "player", p.ID, "error", err)
				h.forceFold(p)
			}
		}

		if err := h.checkConservation(); err != nil {
			return err
		}
		seat = h.nextActingSeat(seat + 1)
	}

	for _, p := range h.players {
		p.Bet = 0
	}
	h.publish(BettingRoundEndedEvent{baseEvent: h.stamp(), Phase: h.phase, Pot: h.ledger.Total()})
	return nil
}

// bettingComplete reports whether the round can close: one claim left on
// the pot, or every player who can still act has both acted and matched
// the current bet. A lone actable player only owes a call, never an act.
func (h *Hand) bettingComplete() bool {
	if h.inHandCount() <= 1 {
		return true
	}
	acting := make([]*Player, 0, len(h.players))
	for _, p := range h.players {
		if p.CanAct() {
			acting = append(acting, p)
		}
	}
	if len(acting) == 0 {
		return true
	}
	if len(acting) == 1 {
		return acting[0].Bet == h.betting.CurrentBet
	}
	for _, p := range acting {
		if !p.HasActed || p.Bet != h.betting.CurrentBet {
			return false
		}
	}
	return true
}

// validActionsFor computes the legal action set for a player. The engine
// trusts this set everywhere: snapshots advertise it and applyAction
// enforces it.
func (h *Hand) validActionsFor(p *Player) []Action {
	owed := h.betting.CurrentBet - p.Bet

	if owed > 0 {
		actions := []Action{Fold, Call}
		// Raising is only offered while someone is left to respond; the
		// last player able to act can only close the action.
		if !h.betting.Capped && !h.soleActor(p) {
			actions = append(actions, Raise)
		}
		if !h.cfg.limitBetting && p.Chips > owed && !h.soleActor(p) {
			actions = append(actions, AllIn)
		}
		return actions
	}

	if h.betting.Capped {
		return []Action{Check}
	}
	actions := []Action{Fold, Check}
	if h.betting.CurrentBet == 0 {
		actions = append(actions, Bet)
	} else {
		actions = append(actions, Raise)
	}
	if !h.cfg.limitBetting && p.Chips > 0 {
		actions = append(actions, AllIn)
	}
	return actions
}

func (h *Hand) applyAction(p *Player, dec Decision) error {
	owed := h.betting.CurrentBet - p.Bet
	if !containsAction(h.validActionsFor(p), dec.Action) {
		return illegalAction(p.ID, dec.Action, "not available (to call: %d, capped: %t)", owed, h.betting.Capped)
	}

	var paid int
	switch dec.Action {
	case Fold:
		p.State = StateFolded

	case Check:
		// Nothing moves.

	case Call:
		paid = h.commit(p, owed)

	case Bet:
		amount := dec.Amount
		if h.cfg.limitBetting {
			if amount != 0 && amount != h.cfg.betLimit {
				return illegalAction(p.ID, Bet, "bet must be exactly %d", h.cfg.betLimit)
			}
			amount = h.cfg.betLimit
		} else if amount < h.cfg.bigBlind {
			return illegalAction(p.ID, Bet, "bet must be at least %d", h.cfg.bigBlind)
		}
		paid = h.commit(p, amount-p.Bet)
		// A short stack only moves the betting level to what it funded.
		if p.Bet > h.betting.CurrentBet {
			h.betting.CurrentBet = p.Bet
			h.betting.LastRaiser = p.ID
			h.resetActedExcept(p)
		}

	case Raise:
		var target int
		if h.cfg.limitBetting {
			target = h.betting.CurrentBet + h.cfg.betLimit
			if dec.Amount != 0 && dec.Amount != target {
				return illegalAction(p.ID, Raise, "raise must be exactly to %d", target)
			}
		} else {
			target = dec.Amount
			if target < h.betting.CurrentBet+h.cfg.bigBlind {
				return illegalAction(p.ID, Raise, "raise must reach at least %d", h.betting.CurrentBet+h.cfg.bigBlind)
			}
		}
		paid = h.commit(p, target-p.Bet)
		// A raise clamped short by the stack raises only to the funded
		// level, so callers never owe more than the pots can absorb; a
		// shove below the current bet is just a call and does not reopen
		// the action.
		if p.Bet > h.betting.CurrentBet {
			h.betting.CurrentBet = p.Bet
			h.betting.LastRaiser = p.ID
			h.betting.RaiseCount++
			if h.cfg.limitBetting && h.betting.RaiseCount >= maxRaises {
				h.betting.Capped = true
			}
			h.resetActedExcept(p)
		}

	case AllIn:
		paid = h.commit(p, p.Chips)
		if p.Bet > h.betting.CurrentBet {
			h.betting.CurrentBet = p.Bet
			h.betting.LastRaiser = p.ID
			h.resetActedExcept(p)
		}
	}

	p.HasActed = true
	p.LastAction = dec.Action
	h.logger.Debug("action", "player", p.ID, "action", dec.Action, "paid", paid, "pot", h.ledger.Total())
	h.publish(PlayerActedEvent{
		baseEvent: h.stamp(),
		PlayerID:  p.ID,
		Action:    dec.Action,
		Amount:    paid,
		Pot:       h.ledger.Total(),
		AllIn:     p.State == StateAllIn,
	})
	return nil
}

// commit moves chips from the player into the ledger. Short stacks in
// clamped mode pay what they have and go all-in, which closes the active
// pot at their level.
func (h *Hand) commit(p *Player, amount int) int {
	paid := h.chips.Debit(p, amount)
	p.Bet += paid
	p.TotalBet += paid
	h.ledger.AddToPot(p.ID, paid)

	if p.Chips == 0 && !h.chips.AllowsNegative() && p.State == StateActive {
		p.State = StateAllIn
		h.ledger.HandleAllIn(p.ID, p.TotalBet, h.actingIDsExcept(p.ID))
	}
	return paid
}

// forceFold folds a player outside the normal validation path, used for
// timeouts and repeated illegal actions.
func (h *Hand) forceFold(p *Player) {
	p.State = StateFolded
	p.HasActed = true
	p.LastAction = Fold
	h.publish(PlayerActedEvent{
		baseEvent: h.stamp(),
		PlayerID:  p.ID,
		Action:    Fold,
		Pot:       h.ledger.Total(),
	})
}

func (h *Hand) requestAction(seat int, snap Snapshot) (Decision, bool) {
	agent := h.agents[seat]
	p := h.players[seat]

	if h.cfg.simulationMode || h.cfg.timeout <= 0 {
		dec, err := agent.GetAction(context.Background(), snap)
		if err != nil {
			h.logger.Warn("agent error, folding", "player", p.ID, "error", err)
			return Decision{Action: Fold}, false
		}
		return dec, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type actionResult struct {
		dec Decision
		err error
	}
	resultCh := make(chan actionResult, 1)
	go func() {
		dec, err := agent.GetAction(ctx, snap)
		resultCh <- actionResult{dec, err}
	}()

	timedOut := make(chan struct{})
	timer := h.clock.AfterFunc(h.cfg.timeout, func() { close(timedOut) })
	defer timer.Stop()

	select {
	case res := <-resultCh:
		if res.err != nil {
			h.logger.Warn("agent error, folding", "player", p.ID, "error", res.err)
			return Decision{Action: Fold}, false
		}
		return res.dec, false
	case <-timedOut:
		h.logger.Warn("decision timeout", "player", p.ID, "phase", h.phase)
		h.publish(PlayerTimeoutEvent{baseEvent: h.stamp(), PlayerID: p.ID, Phase: h.phase})
		return Decision{}, true
	}
}

func (h *Hand) requestDraw(seat int, snap Snapshot) (DrawDecision, bool) {
	agent := h.agents[seat]
	p := h.players[seat]

	if h.cfg.simulationMode || h.cfg.timeout <= 0 {
		dec, err := agent.GetDrawAction(context.Background(), snap)
		if err != nil {
			h.logger.Warn("agent error, standing pat", "player", p.ID, "error", err)
			return DrawDecision{}, false
		}
		return dec, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type drawResult struct {
		dec DrawDecision
		err error
	}
	resultCh := make(chan drawResult, 1)
	go func() {
		dec, err := agent.GetDrawAction(ctx, snap)
		resultCh <- drawResult{dec, err}
	}()

	timedOut := make(chan struct{})
	timer := h.clock.AfterFunc(h.cfg.timeout, func() { close(timedOut) })
	defer timer.Stop()

	select {
	case res := <-resultCh:
		if res.err != nil {
			h.logger.Warn("agent error, standing pat", "player", p.ID, "error", res.err)
			return DrawDecision{}, false
		}
		return res.dec, false
	case <-timedOut:
		h.logger.Warn("draw timeout, standing pat", "player", p.ID, "phase", h.phase)
		h.publish(PlayerTimeoutEvent{baseEvent: h.stamp(), PlayerID: p.ID, Phase: h.phase})
		return DrawDecision{}, true
	}
}

func (h *Hand) runDrawPhase() error {
	h.publish(DrawPhaseStartedEvent{
		baseEvent:      h.stamp(),
		Phase:          h.phase,
		DrawsRemaining: h.drawsRemaining,
	})

	// Collect every decision before replacing any cards, so no discard is
	// informed by another player's replacements in the same phase.
	type plannedDraw struct {
		seat    int
		discard []int
	}
	plans := make([]plannedDraw, 0, len(h.players))

	for seat, p := range h.players {
		if !p.InHand() {
			continue
		}
		dec, timedOut := h.requestDraw(seat, h.snapshotFor(seat))
		if timedOut {
			plans = append(plans, plannedDraw{seat: seat})
			continue
		}
		if err := validateDiscards(dec.Discard); err != nil {
			h.logger.Warn("draw rejected", "player", p.ID, "error", err)
			dec, timedOut = h.requestDraw(seat, h.snapshotFor(seat))
			if timedOut || validateDiscards(dec.Discard) != nil {
				dec = DrawDecision{}
			}
		}
		plans = append(plans, plannedDraw{seat: seat, discard: dec.Discard})
	}

	for _, plan := range plans {
		if err := h.applyDraw(plan.seat, plan.discard); err != nil {
			return err
		}
	}
	h.drawsRemaining--
	return nil
}

func (h *Hand) applyDraw(seat int, discard []int) error {
	p := h.players[seat]
	if len(discard) == 0 {
		h.publish(PlayerDrewEvent{baseEvent: h.stamp(), PlayerID: p.ID, StoodPat: true})
		return nil
	}

	dropping := make(map[int]bool, len(discard))
	for _, idx := range discard {
		dropping[idx] = true
	}
	kept := make([]deck.Card, 0, 5)
	for i, c := range p.cards {
		if dropping[i] {
			// Discards go to a dead pile; the deck is never reshuffled.
			h.discards = append(h.discards, c)
		} else {
			kept = append(kept, c)
		}
	}

	fresh, err := h.deck.DrawMultiple(len(discard))
	if err != nil {
		return fmt.Errorf("%w: replacing for %s: %v", ErrDeckExhausted, p.ID, err)
	}
	p.cards = append(kept, fresh...)
	h.agents[seat].ReceivePrivateCards(p.Cards())

	h.logger.Debug("draw", "player", p.ID, "discarded", len(discard), "deck", h.deck.Remaining())
	h.publish(PlayerDrewEvent{baseEvent: h.stamp(), PlayerID: p.ID, Discarded: len(discard)})
	return nil
}

func validateDiscards(discard []int) error {
	if len(discard) > 5 {
		return fmt.Errorf("game: cannot discard %d cards from a 5 card hand", len(discard))
	}
	seen := make(map[int]bool, len(discard))
	for _, idx := range discard {
		if idx < 0 || idx > 4 {
			return fmt.Errorf("game: discard index %d out of range", idx)
		}
		if seen[idx] {
			return fmt.Errorf("game: duplicate discard index %d", idx)
		}
		seen[idx] = true
	}
	return nil
}

// advance moves to the next phase on the ladder, or straight to showdown
// once the hand is uncontested.
func (h *Hand) advance() {
	if h.inHandCount() <= 1 {
		h.phase = Showdown
		return
	}
	switch h.phase {
	case PreDraw:
		h.phase = FirstDraw
	case FirstDraw:
		h.phase = PostFirstDraw
	case PostFirstDraw:
		h.phase = SecondDraw
	case SecondDraw:
		h.phase = PostSecondDraw
	case PostSecondDraw:
		h.phase = ThirdDraw
	case ThirdDraw:
		h.phase = PostThirdDraw
	case PostThirdDraw:
		h.phase = Showdown
	}
}

func (h *Hand) settle() error {
	inHand := make([]*Player, 0, len(h.players))
	for _, p := range h.players {
		if p.InHand() {
			inHand = append(inHand, p)
		}
	}

	pot := h.ledger.Total()
	var payouts map[string]int
	var showdown []ShowdownHand
	descriptions := make(map[string]string)
	uncontested := len(inHand) == 1

	if uncontested {
		// Sole claim: the pot moves without any cards being revealed.
		payouts = map[string]int{inHand[0].ID: h.ledger.AwardAll(inHand[0].ID)}
	} else {
		ranked := make([]evaluator.RankedHand, 0, len(inHand))
		for _, p := range inHand {
			eval, err := evaluator.Evaluate(p.Cards())
			if err != nil {
				return fmt.Errorf("game: evaluating %s: %w", p.ID, err)
			}
			ranked = append(ranked, evaluator.RankedHand{ID: p.ID, Eval: eval})
			desc := evaluator.Describe(eval)
			descriptions[p.ID] = desc
			showdown = append(showdown, ShowdownHand{PlayerID: p.ID, Cards: p.Cards(), Description: desc})
		}
		payouts = h.ledger.CalculatePayouts(ranked)
	}

	winners := make([]Winner, 0, len(payouts))
	for _, p := range inHand {
		amount, ok := payouts[p.ID]
		if !ok || amount == 0 {
			continue
		}
		h.chips.Credit(p, amount)
		winners = append(winners, Winner{
			PlayerID:    p.ID,
			Amount:      amount,
			Description: descriptions[p.ID],
		})
		h.logger.Info("winner", "player", p.ID, "amount", amount, "hand", descriptions[p.ID])
	}

	if err := h.checkConservation(); err != nil {
		return err
	}

	h.result = &Result{
		HandID:      h.id,
		Winners:     winners,
		Pot:         pot,
		Uncontested: uncontested,
		Payouts:     payouts,
	}
	h.publish(HandEndedEvent{
		baseEvent:   h.stamp(),
		HandID:      h.id,
		Winners:     winners,
		Pot:         pot,
		Uncontested: uncontested,
		Showdown:    showdown,
	})
	return nil
}

func (h *Hand) snapshotFor(seat int) Snapshot {
	p := h.players[seat]
	toCall := h.betting.CurrentBet - p.Bet
	if toCall < 0 {
		toCall = 0
	}
	return Snapshot{
		HandID:         h.id,
		Phase:          h.phase,
		Pot:            h.ledger.Total(),
		CurrentBet:     h.betting.CurrentBet,
		ToCall:         toCall,
		BetLimit:       h.cfg.betLimit,
		ValidActions:   h.validActionsFor(p),
		DrawsRemaining: h.drawsRemaining,
		Seat:           seat,
		Button:         h.button,
		Cards:          p.Cards(),
		Players:        h.publicPlayers(),
	}
}

func (h *Hand) publicPlayers() []PublicPlayer {
	players := make([]PublicPlayer, len(h.players))
	for i, p := range h.players {
		players[i] = PublicPlayer{
			ID:         p.ID,
			Seat:       i,
			Chips:      p.Chips,
			Bet:        p.Bet,
			State:      p.State,
			HasActed:   p.HasActed,
			LastAction: p.LastAction,
		}
	}
	return players
}

// nextActingSeat finds the first seat at or after from, wrapping, whose
// player can act. Returns -1 when nobody can.
func (h *Hand) nextActingSeat(from int) int {
	n := len(h.players)
	for i := 0; i < n; i++ {
		seat := ((from+i)%n + n) % n
		if h.players[seat].CanAct() {
			return seat
		}
	}
	return -1
}

func (h *Hand) activeCount() int {
	count := 0
	for _, p := range h.players {
		if p.State == StateActive {
			count++
		}
	}
	return count
}

func (h *Hand) inHandCount() int {
	count := 0
	for _, p := range h.players {
		if p.InHand() {
			count++
		}
	}
	return count
}

// soleActor reports whether p is the only player still able to act, with
// everyone else folded or all-in.
func (h *Hand) soleActor(p *Player) bool {
	for _, q := range h.players {
		if q != p && q.CanAct() {
			return false
		}
	}
	return true
}

func (h *Hand) actingIDsExcept(playerID string) []string {
	ids := make([]string, 0, len(h.players))
	for _, p := range h.players {
		if p.CanAct() && p.ID != playerID {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func (h *Hand) resetActedExcept(raiser *Player) {
	for _, p := range h.players {
		if p != raiser && p.CanAct() {
			p.HasActed = false
		}
	}
}

func (h *Hand) totalChips() int {
	total := 0
	for _, p := range h.players {
		total += p.Chips
	}
	return total
}

// checkConservation verifies that no chips appeared or vanished since the
// hand began. Runs after every mutation; a violation is a bug, not a game
// condition.
func (h *Hand) checkConservation() error {
	got := h.totalChips() + h.ledger.Total()
	if got != h.startTotal {
		return fmt.Errorf("%w: have %d, started with %d", ErrConservation, got, h.startTotal)
	}
	return nil
}

func (h *Hand) stamp() baseEvent {
	return baseEvent{at: h.clock.Now()}
}

func (h *Hand) publish(e Event) {
	h.bus.Publish(e)
}

func containsAction(actions []Action, a Action) bool {
	for _, action := range actions {
		if action == a {
			return true
		}
	}
	return false
}

package game

import (
	"time"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
)

// EventType identifies the concrete type of an engine event.
type EventType string

const (
	EventHandStarted         EventType = "hand_started"
	EventCardsDealt          EventType = "cards_dealt"
	EventBlindPosted         EventType = "blind_posted"
	EventBettingRoundStarted EventType = "betting_round_started"
	EventPlayerToAct         EventType = "player_to_act"
	EventPlayerActed         EventType = "player_acted"
	EventPlayerTimeout       EventType = "player_timeout"
	EventBettingRoundEnded   EventType = "betting_round_ended"
	EventDrawPhaseStarted    EventType = "draw_phase_started"
	EventPlayerDrew          EventType = "player_drew"
	EventHandEnded           EventType = "hand_ended"
)

// Event is the interface implemented by every engine event. Consumers
// switch on the concrete type; Type exists for logging and routing.
type Event interface {
	Type() EventType
	Time() time.Time
}

type baseEvent struct {
	at time.Time
}

func (e baseEvent) Time() time.Time {
	return e.at
}

// HandStartedEvent announces a new hand with its seating and positions.
type HandStartedEvent struct {
	baseEvent
	HandID         string
	Players        []PublicPlayer
	Button         int
	SmallBlindSeat int
	BigBlindSeat   int
}

func (HandStartedEvent) Type() EventType { return EventHandStarted }

// CardsDealtEvent announces that hole cards went out. It carries no card
// values; private cards travel only via ReceivePrivateCards.
type CardsDealtEvent struct {
	baseEvent
	HandID    string
	PlayerIDs []string
}

func (CardsDealtEvent) Type() EventType { return EventCardsDealt }

// BlindPostedEvent records a posted blind. Blind is "small" or "big".
type BlindPostedEvent struct {
	baseEvent
	PlayerID string
	Amount   int
	Blind    string
}

func (BlindPostedEvent) Type() EventType { return EventBlindPosted }

// BettingRoundStartedEvent opens a betting round.
type BettingRoundStartedEvent struct {
	baseEvent
	Phase Phase
	Pot   int
}

func (BettingRoundStartedEvent) Type() EventType { return EventBettingRoundStarted }

// PlayerToActEvent announces whose turn it is and what they may do.
type PlayerToActEvent struct {
	baseEvent
	PlayerID     string
	Phase        Phase
	ValidActions []Action
	Pot          int
	CurrentBet   int
	ToCall       int
}

func (PlayerToActEvent) Type() EventType { return EventPlayerToAct }

// PlayerActedEvent records an accepted action. Amount is the chips moved by
// this action, not the bet level.
type PlayerActedEvent struct {
	baseEvent
	PlayerID string
	Action   Action
	Amount   int
	Pot      int
	AllIn    bool
}

func (PlayerActedEvent) Type() EventType { return EventPlayerActed }

// PlayerTimeoutEvent records a decision deadline expiring. The forced
// fallback (fold or stand pat) follows as its own event.
type PlayerTimeoutEvent struct {
	baseEvent
	PlayerID string
	Phase    Phase
}

func (PlayerTimeoutEvent) Type() EventType { return EventPlayerTimeout }

// BettingRoundEndedEvent closes a betting round.
type BettingRoundEndedEvent struct {
	baseEvent
	Phase Phase
	Pot   int
}

func (BettingRoundEndedEvent) Type() EventType { return EventBettingRoundEnded }

// DrawPhaseStartedEvent opens a draw phase. DrawsRemaining counts this one.
type DrawPhaseStartedEvent struct {
	baseEvent
	Phase          Phase
	DrawsRemaining int
}

func (DrawPhaseStartedEvent) Type() EventType { return EventDrawPhaseStarted }

// PlayerDrewEvent records one player's draw. Only the discard count is
// public; replacement cards travel via ReceivePrivateCards.
type PlayerDrewEvent struct {
	baseEvent
	PlayerID  string
	Discarded int
	StoodPat  bool
}

func (PlayerDrewEvent) Type() EventType { return EventPlayerDrew }

// Winner is one player's share of the settlement.
type Winner struct {
	PlayerID    string
	Amount      int
	Description string
}

// ShowdownHand is a revealed hand at showdown.
type ShowdownHand struct {
	PlayerID    string
	Cards       []deck.Card
	Description string
}

// HandEndedEvent closes the hand with its settlement. Showdown is empty for
// uncontested wins; no cards are revealed in that case.
type HandEndedEvent struct {
	baseEvent
	HandID      string
	Winners     []Winner
	Pot         int
	Uncontested bool
	Showdown    []ShowdownHand
}

func (HandEndedEvent) Type() EventType { return EventHandEnded }

// EventSubscriber receives engine events. OnEvent is called synchronously
// on the engine goroutine, so implementations must not block.
type EventSubscriber interface {
	OnEvent(Event)
}

// EventFunc adapts a function to the EventSubscriber interface.
type EventFunc func(Event)

// OnEvent calls f(e).
func (f EventFunc) OnEvent(e Event) {
	f(e)
}

// EventBus fans events out to subscribers in subscription order. It is not
// safe for concurrent mutation; subscribe before the hand runs.
type EventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers a subscriber for all events.
func (b *EventBus) Subscribe(s EventSubscriber) {
	b.subscribers = append(b.subscribers, s)
}

// Unsubscribe removes a previously registered subscriber.
func (b *EventBus) Unsubscribe(s EventSubscriber) {
	for i, sub := range b.subscribers {
		if sub == s {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			return
		}
	}
}

// Publish delivers an event to every subscriber.
func (b *EventBus) Publish(e Event) {
	for _, s := range b.subscribers {
		s.OnEvent(e)
	}
}

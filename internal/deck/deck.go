package deck

import (
	"fmt"
	"math/rand"
)

// Deck represents a deck of playing cards. It has no game knowledge beyond
// reset, shuffle and draw; the engine tracks discards separately.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck using the given RNG for shuffling.
// The RNG is required so that callers control determinism.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.fill()
	return d
}

// NewStacked creates a deck that deals the given cards in order. Used for
// deterministic scenarios; the rng is only needed if Reset is called later.
func NewStacked(rng *rand.Rand, cards []Card) *Deck {
	d := &Deck{
		cards: make([]Card, len(cards)),
		rng:   rng,
	}
	copy(d.cards, cards)
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	d.fill()
	d.Shuffle()
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DrawMultiple deals n cards from the deck. It fails rather than dealing
// short: running out of cards is the caller's problem to surface.
func (d *Deck) DrawMultiple(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("deck: %d cards requested, %d remaining", n, len(d.cards))
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

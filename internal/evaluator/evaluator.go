// Package evaluator ranks five-card hands for deuce-to-seven lowball.
//
// Hands are placed on a 16-step ladder where a lower ordinal always wins:
//
//	 1 seven-low (7-5-4-3-2, the wheel, is the unique best hand)
//	 2-8 no-pair hands ranked by their highest card (8-low through ace-low)
//	 9 pair · 10 two pair · 11 three of a kind · 12 straight · 13 flush
//	14 full house · 15 four of a kind · 16 straight flush
//
// Aces are always high, so A-5-4-3-2 is a straight (the ace-high wheel
// shape) and never a low hand. The evaluator is pure and stateless.
package evaluator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
)

// HandType classifies a five-card lowball hand.
type HandType int

const (
	SevenLow HandType = iota
	EightLow
	NineLow
	TenLow
	JackLow
	QueenLow
	KingLow
	AceLow
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable hand type name
func (t HandType) String() string {
	switch t {
	case SevenLow:
		return "Seven Low"
	case EightLow:
		return "Eight Low"
	case NineLow:
		return "Nine Low"
	case TenLow:
		return "Ten Low"
	case JackLow:
		return "Jack Low"
	case QueenLow:
		return "Queen Low"
	case KingLow:
		return "King Low"
	case AceLow:
		return "Ace Low"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Rank returns the ladder ordinal for the hand type (1 best, 16 worst).
func (t HandType) Rank() int {
	return int(t) + 1
}

// Evaluation is the ranked result for a five-card hand.
type Evaluation struct {
	Rank   int // 1 (best) through 16 (worst)
	Type   HandType
	Values []int // sorted rank values, ascending; used for tie-breaking
}

// Evaluate classifies and ranks a five-card lowball hand. Any card count
// other than five is a programming error on the caller's side.
func Evaluate(cards []deck.Card) (Evaluation, error) {
	if len(cards) != 5 {
		return Evaluation{}, fmt.Errorf("evaluator: expected 5 cards, got %d", len(cards))
	}

	values := make([]int, 5)
	counts := make(map[int]int, 5)
	for i, c := range cards {
		values[i] = c.Value()
		counts[values[i]]++
	}
	sort.Ints(values)

	var t HandType
	switch {
	case hasOfAKind(counts, 4):
		t = FourOfAKind
	case hasOfAKind(counts, 3) && hasOfAKind(counts, 2):
		t = FullHouse
	case hasOfAKind(counts, 3):
		t = ThreeOfAKind
	case pairCount(counts) == 2:
		t = TwoPair
	case pairCount(counts) == 1:
		t = OnePair
	default:
		straight := isStraight(values)
		flush := isFlush(cards)
		switch {
		case straight && flush:
			t = StraightFlush
		case flush:
			t = Flush
		case straight:
			t = Straight
		default:
			t = lowType(values[4])
		}
	}

	return Evaluation{Rank: t.Rank(), Type: t, Values: values}, nil
}

// lowType maps the highest card of a no-pair, no-straight, no-flush hand to
// its ladder step. A top card of seven is only possible for the five
// seven-low combinations, of which 7-5-4-3-2 is the unique best.
func lowType(high int) HandType {
	switch high {
	case 7:
		return SevenLow
	case 8:
		return EightLow
	case 9:
		return NineLow
	case 10:
		return TenLow
	case 11:
		return JackLow
	case 12:
		return QueenLow
	case 13:
		return KingLow
	default:
		return AceLow
	}
}

func hasOfAKind(counts map[int]int, n int) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}

func pairCount(counts map[int]int) int {
	pairs := 0
	for _, c := range counts {
		if c == 2 {
			pairs++
		}
	}
	return pairs
}

// isStraight reports whether the sorted values form five consecutive ranks.
// The ace-high wheel shape {14,2,3,4,5} also counts; it is a straight in
// deuce-to-seven even though the cards look like a low hand.
func isStraight(sorted []int) bool {
	consecutive := true
	for i := 1; i < 5; i++ {
		if sorted[i] != sorted[i-1]+1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return true
	}
	return sorted[0] == 2 && sorted[1] == 3 && sorted[2] == 4 && sorted[3] == 5 && sorted[4] == 14
}

func isFlush(cards []deck.Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// Compare orders two evaluations. It returns a negative number if a wins,
// positive if b wins, and zero for an exact tie. Ladder rank decides first;
// within a rank the sorted values are compared from highest to lowest and
// the lower value wins at the first difference.
func Compare(a, b Evaluation) int {
	if a.Rank != b.Rank {
		return a.Rank - b.Rank
	}
	for i := len(a.Values) - 1; i >= 0; i-- {
		if a.Values[i] != b.Values[i] {
			return a.Values[i] - b.Values[i]
		}
	}
	return 0
}

// RankedHand pairs a player identifier with an evaluated hand.
type RankedHand struct {
	ID   string
	Eval Evaluation
}

// FindWinners returns every hand tying with the best of the given hands.
// The sort is stable, so callers that pass hands in seat order get winners
// back in seat order.
func FindWinners(hands []RankedHand) []RankedHand {
	if len(hands) == 0 {
		return nil
	}

	ranked := make([]RankedHand, len(hands))
	copy(ranked, hands)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Compare(ranked[i].Eval, ranked[j].Eval) < 0
	})

	winners := []RankedHand{ranked[0]}
	for _, h := range ranked[1:] {
		if Compare(h.Eval, ranked[0].Eval) != 0 {
			break
		}
		winners = append(winners, h)
	}
	return winners
}

// Describe produces a display label for an evaluation, e.g. "8-7-5-3-2 low"
// or "Pair of Kings". Settlement never depends on this.
func Describe(e Evaluation) string {
	switch e.Type {
	case SevenLow, EightLow, NineLow, TenLow, JackLow, QueenLow, KingLow, AceLow:
		if e.Type == SevenLow && e.Values[1] == 3 && e.Values[2] == 4 && e.Values[3] == 5 {
			return "7-5-4-3-2, the wheel"
		}
		return descendingValues(e.Values) + " low"
	case OnePair:
		return fmt.Sprintf("Pair of %ss", valueName(repeatedValue(e.Values, 2)))
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return fmt.Sprintf("Three %ss", valueName(repeatedValue(e.Values, 3)))
	case Straight:
		return fmt.Sprintf("Straight, %s high", valueName(straightHigh(e.Values)))
	case Flush:
		return fmt.Sprintf("Flush, %s high", valueName(e.Values[4]))
	case FullHouse:
		return fmt.Sprintf("Full House, %ss full", valueName(repeatedValue(e.Values, 3)))
	case FourOfAKind:
		return fmt.Sprintf("Four %ss", valueName(repeatedValue(e.Values, 4)))
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s high", valueName(straightHigh(e.Values)))
	default:
		return e.Type.String()
	}
}

// straightHigh returns the effective high card of a straight, treating the
// ace-high wheel shape as five high.
func straightHigh(sorted []int) int {
	if sorted[4] == 14 && sorted[3] == 5 {
		return 5
	}
	return sorted[4]
}

// repeatedValue finds the value occurring exactly n times.
func repeatedValue(values []int, n int) int {
	counts := make(map[int]int, 5)
	for _, v := range values {
		counts[v]++
	}
	for v, c := range counts {
		if c == n {
			return v
		}
	}
	return 0
}

func descendingValues(sorted []int) string {
	parts := make([]string, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		parts = append(parts, valueName(sorted[i]))
	}
	return strings.Join(parts, "-")
}

func valueName(v int) string {
	return deck.Rank(v).String()
}

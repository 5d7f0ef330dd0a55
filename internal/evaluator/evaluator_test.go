package evaluator

import (
	"testing"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
)

func mustEval(t *testing.T, cards string) Evaluation {
	t.Helper()
	e, err := Evaluate(deck.MustParseCards(cards))
	if err != nil {
		t.Fatalf("Evaluate(%s) error: %v", cards, err)
	}
	return e
}

func TestEvaluateLadder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
		rank  int
		typ   HandType
	}{
		{"wheel", "7c 5d 4h 3s 2c", 1, SevenLow},
		{"rough seven", "7c 6d 5h 4s 2c", 1, SevenLow},
		{"eight low", "8c 6d 4h 3s 2c", 2, EightLow},
		{"nine low", "9c 7d 5h 3s 2c", 3, NineLow},
		{"ten low", "Tc 8d 6h 4s 2c", 4, TenLow},
		{"jack low", "Jc 9d 7h 5s 2c", 5, JackLow},
		{"queen low", "Qc Td 8h 6s 2c", 6, QueenLow},
		{"king low", "Kc Jd 9h 7s 2c", 7, KingLow},
		{"ace low", "Ac Jd 9h 7s 2c", 8, AceLow},
		{"pair", "Kc Kd 9h 7s 2c", 9, OnePair},
		{"two pair", "Kc Kd 9h 9s 2c", 10, TwoPair},
		{"trips", "Kc Kd Kh 9s 2c", 11, ThreeOfAKind},
		{"straight", "9c 8d 7h 6s 5c", 12, Straight},
		{"ace high straight", "Ac Kd Qh Js Tc", 12, Straight},
		{"flush", "Kc Jc 9c 7c 2c", 13, Flush},
		{"full house", "Kc Kd Kh 9s 9c", 14, FullHouse},
		{"quads", "Kc Kd Kh Ks 9c", 15, FourOfAKind},
		{"straight flush", "9c 8c 7c 6c 5c", 16, StraightFlush},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := mustEval(t, tc.cards)
			if e.Rank != tc.rank {
				t.Errorf("rank = %d, want %d", e.Rank, tc.rank)
			}
			if e.Type != tc.typ {
				t.Errorf("type = %v, want %v", e.Type, tc.typ)
			}
		})
	}
}

func TestWheelSupremacy(t *testing.T) {
	t.Parallel()

	wheel := mustEval(t, "7c 5d 4h 3s 2c")

	// The wheel beats every other hand shape, including the best eight low.
	challengers := []string{
		"8c 6d 4h 3s 2c", // best eight low
		"7c 6d 5h 4s 2c", // second-best seven low
		"7d 5h 4s 3c 2d", // wheel in other suits ties, checked separately
	}

	if got := Compare(wheel, mustEval(t, challengers[0])); got >= 0 {
		t.Errorf("wheel should beat 8-6-4-3-2, Compare = %d", got)
	}
	if got := Compare(wheel, mustEval(t, challengers[1])); got >= 0 {
		t.Errorf("wheel should beat 7-6-5-4-2, Compare = %d", got)
	}
	if got := Compare(wheel, mustEval(t, challengers[2])); got != 0 {
		t.Errorf("suits should not matter, Compare = %d", got)
	}
}

func TestAceLowStraightIsStraight(t *testing.T) {
	t.Parallel()

	// A-5-4-3-2 looks like a great low but the ace-high wheel shape is a
	// straight (rank 12), never a low hand.
	e := mustEval(t, "Ac 5d 4h 3s 2c")
	if e.Type != Straight {
		t.Fatalf("A-5-4-3-2 should be a straight, got %v", e.Type)
	}
	if e.Rank != 12 {
		t.Errorf("rank = %d, want 12", e.Rank)
	}

	// And an ace with low cards that do not connect is just an ace low.
	e = mustEval(t, "Ac 6d 4h 3s 2c")
	if e.Type != AceLow {
		t.Errorf("A-6-4-3-2 should be ace low, got %v", e.Type)
	}
}

func TestSuitedWheelShapeIsStraightFlush(t *testing.T) {
	t.Parallel()

	e := mustEval(t, "7c 5c 4c 3c 2c")
	if e.Type != Flush {
		t.Errorf("suited 7-5-4-3-2 should be a flush, got %v", e.Type)
	}

	e = mustEval(t, "6c 5c 4c 3c 2c")
	if e.Type != StraightFlush {
		t.Errorf("suited 6-5-4-3-2 should be a straight flush, got %v", e.Type)
	}
}

func TestEvaluateWrongCardCount(t *testing.T) {
	t.Parallel()

	if _, err := Evaluate(deck.MustParseCards("7c 5d 4h 3s")); err == nil {
		t.Error("4 cards should be rejected")
	}
	if _, err := Evaluate(deck.MustParseCards("7c 5d 4h 3s 2c 8d")); err == nil {
		t.Error("6 cards should be rejected")
	}
	if _, err := Evaluate(nil); err == nil {
		t.Error("nil cards should be rejected")
	}
}

func TestCompareTieBreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		better string
		worse  string
	}{
		{"second card decides", "8c 6d 4h 3s 2c", "8c 7d 4h 3s 2c"},
		{"last card decides", "Tc 8d 6h 4s 2c", "Td 8h 6s 4c 3d"},
		{"pair beats bigger low", "Ac Jd 9h 7s 2c", "2c 2d 4h 3s 5c"},
		{"lower pair wins", "2c 2d 5h 4s 3c", "3c 3d 5h 4s 2c"},
		{"lower straight wins", "6c 5d 4h 3s 2c", "7c 6d 5h 4s 3c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := mustEval(t, tc.better)
			b := mustEval(t, tc.worse)
			if got := Compare(a, b); got >= 0 {
				t.Errorf("Compare(%s, %s) = %d, want < 0", tc.better, tc.worse, got)
			}
			if got := Compare(b, a); got <= 0 {
				t.Errorf("Compare(%s, %s) = %d, want > 0", tc.worse, tc.better, got)
			}
		})
	}
}

func TestFindWinnersNWayTie(t *testing.T) {
	t.Parallel()

	hands := []RankedHand{
		{ID: "a", Eval: mustEval(t, "8c 6d 4h 3s 2c")},
		{ID: "b", Eval: mustEval(t, "8d 6h 4s 3c 2d")},
		{ID: "c", Eval: mustEval(t, "8h 6s 4c 3d 2h")},
		{ID: "d", Eval: mustEval(t, "9c 6d 4h 3s 2c")},
	}

	winners := FindWinners(hands)
	if len(winners) != 3 {
		t.Fatalf("expected 3 winners, got %d", len(winners))
	}
	// Stable: input order preserved among ties.
	for i, want := range []string{"a", "b", "c"} {
		if winners[i].ID != want {
			t.Errorf("winner %d = %s, want %s", i, winners[i].ID, want)
		}
	}
}

func TestFindWinnersSingle(t *testing.T) {
	t.Parallel()

	hands := []RankedHand{
		{ID: "a", Eval: mustEval(t, "9c 6d 4h 3s 2c")},
		{ID: "b", Eval: mustEval(t, "7c 5d 4h 3s 2c")},
	}
	winners := FindWinners(hands)
	if len(winners) != 1 || winners[0].ID != "b" {
		t.Fatalf("expected sole winner b, got %v", winners)
	}

	if got := FindWinners(nil); got != nil {
		t.Errorf("no hands should yield no winners, got %v", got)
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards string
		want  string
	}{
		{"7c 5d 4h 3s 2c", "7-5-4-3-2, the wheel"},
		{"8c 6d 4h 3s 2c", "8-6-4-3-2 low"},
		{"Kc Kd 9h 7s 2c", "Pair of Ks"},
		{"Ac 5d 4h 3s 2c", "Straight, 5 high"},
		{"9c 8d 7h 6s 5c", "Straight, 9 high"},
		{"Kc Jc 9c 7c 2c", "Flush, K high"},
		{"Kc Kd Kh 9s 9c", "Full House, Ks full"},
	}

	for _, tc := range tests {
		if got := Describe(mustEval(t, tc.cards)); got != tc.want {
			t.Errorf("Describe(%s) = %q, want %q", tc.cards, got, tc.want)
		}
	}
}

package deck

import "testing"

func TestCardString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card    Card
		display string
		compact string
	}{
		{NewCard(Spades, Ace), "A♠", "As"},
		{NewCard(Hearts, Two), "2♥", "2h"},
		{NewCard(Diamonds, Ten), "T♦", "Td"},
		{NewCard(Clubs, Seven), "7♣", "7c"},
	}

	for _, tc := range tests {
		if got := tc.card.String(); got != tc.display {
			t.Errorf("String() = %q, want %q", got, tc.display)
		}
		if got := tc.card.Compact(); got != tc.compact {
			t.Errorf("Compact() = %q, want %q", got, tc.compact)
		}
	}
}

func TestCardValue(t *testing.T) {
	t.Parallel()

	if got := NewCard(Spades, Two).Value(); got != 2 {
		t.Errorf("Two should have value 2, got %d", got)
	}
	if got := NewCard(Spades, Ace).Value(); got != 14 {
		t.Errorf("Ace should always be high (14), got %d", got)
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Card
	}{
		{"As", NewCard(Spades, Ace)},
		{"7c", NewCard(Clubs, Seven)},
		{"Th", NewCard(Hearts, Ten)},
		{"2d", NewCard(Diamonds, Two)},
	}

	for _, tc := range tests {
		got, err := ParseCard(tc.in)
		if err != nil {
			t.Fatalf("ParseCard(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseCard(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "A", "Ax", "1s", "Asx"} {
		if _, err := ParseCard(bad); err == nil {
			t.Errorf("ParseCard(%q) should fail", bad)
		}
	}
}

func TestMustParseCards(t *testing.T) {
	t.Parallel()

	cards := MustParseCards("7c 5d 4h 3s 2c")
	if len(cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(cards))
	}
	if cards[0] != NewCard(Clubs, Seven) {
		t.Errorf("first card should be 7♣, got %v", cards[0])
	}
	if cards[4] != NewCard(Clubs, Two) {
		t.Errorf("last card should be 2♣, got %v", cards[4])
	}
}

func TestIsRed(t *testing.T) {
	t.Parallel()

	if !NewCard(Hearts, King).IsRed() {
		t.Error("hearts should be red")
	}
	if !NewCard(Diamonds, King).IsRed() {
		t.Error("diamonds should be red")
	}
	if NewCard(Spades, King).IsRed() {
		t.Error("spades should not be red")
	}
	if NewCard(Clubs, King).IsRed() {
		t.Error("clubs should not be red")
	}
}

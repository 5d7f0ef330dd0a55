package deck

import (
	"math/rand"
	"testing"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	t.Parallel()

	d := New(rand.New(rand.NewSource(1)))
	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}

	seen := make(map[Card]bool)
	for {
		card, ok := d.Draw()
		if !ok {
			break
		}
		if seen[card] {
			t.Fatalf("duplicate card %v", card)
		}
		seen[card] = true
	}
	if len(seen) != 52 {
		t.Fatalf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestDrawMultiple(t *testing.T) {
	t.Parallel()

	d := New(rand.New(rand.NewSource(1)))
	d.Shuffle()

	cards, err := d.DrawMultiple(5)
	if err != nil {
		t.Fatalf("DrawMultiple(5) error: %v", err)
	}
	if len(cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(cards))
	}
	if d.Remaining() != 47 {
		t.Errorf("expected 47 remaining, got %d", d.Remaining())
	}
}

func TestDrawMultipleExhausted(t *testing.T) {
	t.Parallel()

	d := New(rand.New(rand.NewSource(1)))
	if _, err := d.DrawMultiple(50); err != nil {
		t.Fatalf("DrawMultiple(50) error: %v", err)
	}

	// Only 2 cards left; asking for 3 must fail without dealing short.
	if _, err := d.DrawMultiple(3); err == nil {
		t.Fatal("expected error drawing 3 from 2 remaining")
	}
	if d.Remaining() != 2 {
		t.Errorf("failed draw should not consume cards, %d remaining", d.Remaining())
	}
}

func TestShuffleIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	d1 := New(rand.New(rand.NewSource(42)))
	d1.Shuffle()
	d2 := New(rand.New(rand.NewSource(42)))
	d2.Shuffle()

	for i := 0; i < 52; i++ {
		c1, _ := d1.Draw()
		c2, _ := d2.Draw()
		if c1 != c2 {
			t.Fatalf("same seed should shuffle identically, diverged at %d: %v vs %v", i, c1, c2)
		}
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	d := New(rand.New(rand.NewSource(1)))
	d.Shuffle()
	if _, err := d.DrawMultiple(20); err != nil {
		t.Fatal(err)
	}

	d.Reset()
	if d.Remaining() != 52 {
		t.Errorf("reset deck should have 52 cards, got %d", d.Remaining())
	}
}

func TestNewStacked(t *testing.T) {
	t.Parallel()

	stack := MustParseCards("7c 5d 4h 3s 2c 8s")
	d := NewStacked(rand.New(rand.NewSource(1)), stack)

	cards, err := d.DrawMultiple(5)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range cards {
		if c != stack[i] {
			t.Errorf("card %d: got %v, want %v", i, c, stack[i])
		}
	}
	if d.Remaining() != 1 {
		t.Errorf("expected 1 remaining, got %d", d.Remaining())
	}
}

package game

// Phase is one step of the fixed hand ladder. Four betting rounds are
// interleaved with three draw phases; the ladder never branches except to
// jump straight to showdown when a hand goes uncontested.
type Phase int

const (
	Waiting Phase = iota
	PreDraw
	FirstDraw
	PostFirstDraw
	SecondDraw
	PostSecondDraw
	ThirdDraw
	PostThirdDraw
	Showdown
	Ended
)

// String returns the string representation of a phase
func (p Phase) String() string {
	return [...]string{
		"waiting",
		"pre_draw",
		"first_draw",
		"post_first_draw",
		"second_draw",
		"post_second_draw",
		"third_draw",
		"post_third_draw",
		"showdown",
		"ended",
	}[p]
}

// IsBetting reports whether the phase is a betting round.
func (p Phase) IsBetting() bool {
	switch p {
	case PreDraw, PostFirstDraw, PostSecondDraw, PostThirdDraw:
		return true
	}
	return false
}

// IsDraw reports whether the phase is a draw phase.
func (p Phase) IsDraw() bool {
	switch p {
	case FirstDraw, SecondDraw, ThirdDraw:
		return true
	}
	return false
}

// Action is a betting action a player can take.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

// String returns the string representation of an action
func (a Action) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin"}[a]
}

// maxRaises caps a limit betting round. The opening bet does not count as a
// raise, so a capped round saw five aggressive actions in total.
const maxRaises = 4

// BettingState holds the per-round betting counters. Every field resets at
// the start of each betting round; nothing here survives across rounds.
type BettingState struct {
	CurrentBet int
	RaiseCount int
	Capped     bool
	LastRaiser string
}

func (bs *BettingState) reset() {
	*bs = BettingState{}
}

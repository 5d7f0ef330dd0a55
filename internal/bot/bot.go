// Package bot provides baseline agents for simulations and table filling.
// None of them are meant to play well; they exist to exercise the engine
// and to give better agents something to beat.
package bot

import (
	"sort"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
	"github.com/jkraybill/triple-draw-manager/internal/game"
)

func hasAction(actions []game.Action, a game.Action) bool {
	for _, action := range actions {
		if action == a {
			return true
		}
	}
	return false
}

// checkOrCall picks the passive line: check when possible, otherwise call,
// otherwise fold.
func checkOrCall(valid []game.Action) game.Decision {
	if hasAction(valid, game.Check) {
		return game.Decision{Action: game.Check}
	}
	if hasAction(valid, game.Call) {
		return game.Decision{Action: game.Call}
	}
	return game.Decision{Action: game.Fold}
}

// lowballDiscards picks which cards to throw away when drawing at a low:
// every duplicated rank beyond the first, and anything ten or higher. Aces
// count as high here like everywhere else in deuce-to-seven.
func lowballDiscards(cards []deck.Card) []int {
	type indexed struct {
		idx   int
		value int
	}
	byValue := make([]indexed, len(cards))
	for i, c := range cards {
		byValue[i] = indexed{idx: i, value: c.Value()}
	}
	sort.SliceStable(byValue, func(i, j int) bool { return byValue[i].value < byValue[j].value })

	var discard []int
	seen := make(map[int]bool, len(cards))
	for _, ic := range byValue {
		if seen[ic.value] || ic.value >= 10 {
			discard = append(discard, ic.idx)
			continue
		}
		seen[ic.value] = true
	}
	sort.Ints(discard)
	return discard
}

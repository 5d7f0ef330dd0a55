package game

import (
	"fmt"

	"github.com/jkraybill/triple-draw-manager/internal/evaluator"
)

// Pot is one pot in the ledger. Eligibility is fixed at creation and only
// ever shrinks in meaning (folded players simply never appear in the ranked
// hands at settlement). Once a cap is set it is never relaxed within a hand.
type Pot struct {
	ID            int
	Label         string
	Eligible      map[string]bool
	Contributions map[string]int
	Amount        int
	Active        bool
	Cap           int // per-player total contribution cap; 0 means uncapped
}

// PotLedger tracks the main pot and any side pots for a single hand. Pots
// are ordered by creation: every capped pot precedes the one active pot at
// the tail, which is the only pot accepting unbounded contributions.
type PotLedger struct {
	pots []*Pot
}

// NewPotLedger creates a ledger holding a single open main pot for the
// given players.
func NewPotLedger(playerIDs []string) *PotLedger {
	eligible := make(map[string]bool, len(playerIDs))
	for _, id := range playerIDs {
		eligible[id] = true
	}
	return &PotLedger{pots: []*Pot{{
		ID:            0,
		Label:         "main",
		Eligible:      eligible,
		Contributions: make(map[string]int),
		Active:        true,
	}}}
}

// Pots returns the pots in creation order.
func (l *PotLedger) Pots() []*Pot {
	return l.pots
}

// Total returns the chips currently held across all pots.
func (l *PotLedger) Total() int {
	total := 0
	for _, pot := range l.pots {
		total += pot.Amount
	}
	return total
}

func (l *PotLedger) active() *Pot {
	return l.pots[len(l.pots)-1]
}

// AddToPot distributes a contribution across pots in creation order. A
// capped pot accepts chips only up to the player's remaining allowance
// under its cap; whatever is left spills into the active pot. The return
// values are the total absorbed and a per-pot breakdown keyed by pot ID.
func (l *PotLedger) AddToPot(playerID string, amount int) (int, map[int]int) {
	breakdown := make(map[int]int)
	absorbed := 0
	remaining := amount

	for _, pot := range l.pots {
		if remaining <= 0 {
			break
		}
		take := remaining
		if pot.Cap > 0 {
			allowance := pot.Cap - pot.Contributions[playerID]
			if allowance <= 0 {
				continue
			}
			if take > allowance {
				take = allowance
			}
		} else if !pot.Active {
			continue
		}
		pot.Contributions[playerID] += take
		pot.Amount += take
		breakdown[pot.ID] = take
		absorbed += take
		remaining -= take
	}

	return absorbed, breakdown
}

// HandleAllIn closes the active pot at the all-in player's contribution
// level and opens a side pot for the players still able to bet. The cap is
// expressed in total hand contribution for this pot, so later calls route
// through AddToPot without further bookkeeping. Chips already posted above
// the cap migrate into the new side pot.
//
// A side pot is created when at least two bettable players remain, when
// exactly one remains in a heads-up hand, or whenever excess chips need
// somewhere to live.
func (l *PotLedger) HandleAllIn(playerID string, totalContribution int, stillActive []string) *Pot {
	pot := l.active()

	cap := totalContribution
	for _, earlier := range l.pots {
		if earlier == pot {
			break
		}
		cap -= earlier.Contributions[playerID]
	}
	if cap <= 0 {
		// Everything the player had was absorbed by earlier pots; the
		// active pot is untouched by this all-in.
		return nil
	}

	excess := make(map[string]int)
	totalExcess := 0
	for id, contributed := range pot.Contributions {
		if contributed > cap {
			excess[id] = contributed - cap
			totalExcess += contributed - cap
		}
	}

	pot.Cap = cap
	pot.Active = false

	headsUp := len(l.pots[0].Eligible) == 2
	needSide := len(stillActive) >= 2 || (headsUp && len(stillActive) == 1) || totalExcess > 0
	if !needSide {
		return nil
	}

	eligible := make(map[string]bool, len(stillActive))
	for _, id := range stillActive {
		if pot.Eligible[id] {
			eligible[id] = true
		}
	}
	side := &Pot{
		ID:            len(l.pots),
		Label:         fmt.Sprintf("side %d", len(l.pots)),
		Eligible:      eligible,
		Contributions: make(map[string]int),
		Active:        true,
	}
	for id, over := range excess {
		pot.Contributions[id] -= over
		pot.Amount -= over
		side.Contributions[id] += over
		side.Amount += over
	}
	l.pots = append(l.pots, side)
	return side
}

// CalculatePayouts resolves every pot against the given ranked hands and
// returns the chips owed to each player. Hands should arrive in seat order;
// odd chips that do not divide evenly go to winners one at a time in that
// order. A pot whose eligible players have all folded falls back to the
// full set of remaining hands so no chips are ever stranded. Pots are
// emptied as they pay out.
func (l *PotLedger) CalculatePayouts(hands []evaluator.RankedHand) map[string]int {
	payouts := make(map[string]int)

	for _, pot := range l.pots {
		if pot.Amount == 0 {
			continue
		}

		candidates := make([]evaluator.RankedHand, 0, len(hands))
		for _, h := range hands {
			if pot.Eligible[h.ID] {
				candidates = append(candidates, h)
			}
		}
		if len(candidates) == 0 {
			candidates = hands
		}
		if len(candidates) == 0 {
			continue
		}

		winners := evaluator.FindWinners(candidates)
		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for i, w := range winners {
			amount := share
			if i < remainder {
				amount++
			}
			payouts[w.ID] += amount
		}
		pot.Amount = 0
	}

	return payouts
}

// AwardAll empties every pot to a single player and returns the total. Used
// when a hand ends uncontested and no showdown ranking exists.
func (l *PotLedger) AwardAll(playerID string) int {
	total := 0
	for _, pot := range l.pots {
		total += pot.Amount
		pot.Amount = 0
	}
	return total
}

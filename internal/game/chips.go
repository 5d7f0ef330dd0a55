package game

// ChipPolicy centralizes chip mutation for a hand. Exactly one policy is
// constructed per hand and passed wherever chips move, so there is a single
// place that decides between clamped and signed accounting. The clamped
// variant never lets a stack go below zero; the signed variant permits
// negative balances for simulation and analysis runs.
type ChipPolicy struct {
	signed bool
}

// NewChipPolicy selects clamped (false) or signed (true) accounting.
func NewChipPolicy(allowNegative bool) ChipPolicy {
	return ChipPolicy{signed: allowNegative}
}

// Debit removes up to amount chips from the player's stack and returns the
// amount actually moved. In clamped mode a short stack pays what it has; in
// signed mode the full amount always moves.
func (cp ChipPolicy) Debit(p *Player, amount int) int {
	if amount <= 0 {
		return 0
	}
	if !cp.signed && amount > p.Chips {
		amount = p.Chips
	}
	p.Chips -= amount
	return amount
}

// Credit adds amount chips to the player's stack.
func (cp ChipPolicy) Credit(p *Player, amount int) {
	if amount > 0 {
		p.Chips += amount
	}
}

// AllowsNegative reports whether signed accounting is in effect.
func (cp ChipPolicy) AllowsNegative() bool {
	return cp.signed
}

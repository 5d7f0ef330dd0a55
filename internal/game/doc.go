// Package game implements a single hand of fixed-limit deuce-to-seven
// triple draw lowball.
//
// A Hand owns all mutable state for one deal: the players' chips, the deck,
// the pot ledger and the betting counters. It walks a fixed phase ladder of
// four betting rounds interleaved with three draw phases, asks each seat's
// PlayerAgent for decisions, and publishes typed events on an EventBus as
// the hand progresses. Chips move through a single ChipPolicy so that the
// sum of stacks and pots is invariant from deal to settlement.
//
// Hands are single-use. Orchestration across hands (button movement, blind
// schedules, busting players out) belongs to the caller.
package game

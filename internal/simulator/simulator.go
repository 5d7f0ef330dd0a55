// Package simulator plays batches of hands between baseline bots. Each hand
// gets its own RNG seeded from the batch seed and the hand index, so a
// batch is reproducible regardless of how many workers run it.
package simulator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/jkraybill/triple-draw-manager/internal/bot"
	"github.com/jkraybill/triple-draw-manager/internal/game"
)

// Config holds configuration for running simulations
type Config struct {
	Hands         int
	Players       int
	Workers       int
	Seed          int64
	SmallBlind    int
	BigBlind      int
	StartingChips int
	Logger        *log.Logger
}

// Simulator runs triple draw hand simulations
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration. Zero-value
// fields get sensible defaults.
func New(config Config) (*Simulator, error) {
	if config.Hands <= 0 {
		return nil, fmt.Errorf("simulator: hands must be positive, got %d", config.Hands)
	}
	if config.Players < 2 || config.Players > 6 {
		return nil, fmt.Errorf("simulator: players must be 2 through 6, got %d", config.Players)
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.SmallBlind <= 0 {
		config.SmallBlind = 5
	}
	if config.BigBlind <= 0 {
		config.BigBlind = 10
	}
	if config.StartingChips <= 0 {
		config.StartingChips = 1000
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Simulator{config: config, logger: logger.WithPrefix("simulator")}, nil
}

// Run plays the configured number of hands across the worker pool and
// returns aggregate statistics.
func (s *Simulator) Run() (*Statistics, error) {
	stats := NewStatistics()
	started := time.Now()

	var g errgroup.Group
	g.SetLimit(s.config.Workers)
	for i := 0; i < s.config.Hands; i++ {
		g.Go(func() error {
			result, err := s.playHand(i)
			if err != nil {
				// A hand that runs the stock dry is abandoned, not fatal to
				// the batch: no chips moved out of it, so the books still
				// balance across the remaining hands.
				if errors.Is(err, game.ErrDeckExhausted) {
					s.logger.Warn("hand abandoned, deck exhausted", "hand", i)
					stats.AddAbandoned()
					return nil
				}
				return fmt.Errorf("hand %d: %w", i, err)
			}
			stats.Add(result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := stats.Validate(); err != nil {
		return nil, err
	}
	s.logger.Info("simulation complete",
		"hands", s.config.Hands,
		"players", s.config.Players,
		"seed", s.config.Seed,
		"elapsed", time.Since(started))
	return stats, nil
}

// playHand runs one hand with a mixed bot lineup. The button rotates with
// the hand index so no lineup slot has a positional edge over a batch.
func (s *Simulator) playHand(index int) (HandResult, error) {
	rng := rand.New(rand.NewSource(s.config.Seed + int64(index)))

	seats := make([]game.Seat, s.config.Players)
	names := make([]string, s.config.Players)
	for i := range seats {
		name := fmt.Sprintf("%s-%d", s.lineupSlot(i), i+1)
		player, err := game.NewPlayer(name, s.config.StartingChips)
		if err != nil {
			return HandResult{}, err
		}
		seats[i] = game.Seat{Player: player, Agent: s.newAgent(i, rng)}
		names[i] = name
	}

	h, err := game.NewHand(rng, seats,
		game.WithBlinds(s.config.SmallBlind, s.config.BigBlind),
		game.WithDealerButton(index%s.config.Players),
		game.WithSimulationMode(),
		game.WithLogger(s.logger),
	)
	if err != nil {
		return HandResult{}, err
	}
	res, err := h.Run()
	if err != nil {
		return HandResult{}, err
	}

	result := HandResult{
		HandID:      res.HandID,
		Uncontested: res.Uncontested,
		Net:         make(map[string]int, len(seats)),
	}
	for i, seat := range seats {
		result.Net[names[i]] = seat.Player.Chips - s.config.StartingChips
	}
	for _, w := range res.Winners {
		result.Winners = append(result.Winners, w.PlayerID)
	}
	return result, nil
}

func (s *Simulator) lineupSlot(seat int) string {
	switch seat % 3 {
	case 0:
		return "callbot"
	case 1:
		return "randbot"
	default:
		return "patbot"
	}
}

func (s *Simulator) newAgent(seat int, rng *rand.Rand) game.PlayerAgent {
	switch seat % 3 {
	case 0:
		return bot.NewCallBot(s.logger)
	case 1:
		return bot.NewRandBot(rng, s.logger)
	default:
		return bot.NewPatBot(s.logger)
	}
}

package main

import (
	"fmt"

	"github.com/jkraybill/triple-draw-manager/internal/config"
	"github.com/jkraybill/triple-draw-manager/internal/simulator"
)

// SimulateCmd runs a batch of bot-vs-bot hands and prints the results.
type SimulateCmd struct {
	Hands   int   `help:"Number of hands to simulate (overrides config)"`
	Players int   `help:"Players per table, 2-6 (overrides config)"`
	Workers int   `help:"Concurrent workers (overrides config)"`
	Seed    int64 `help:"RNG seed for reproducible runs (overrides config)"`
}

func (s *SimulateCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if cli.LogLevel != "" {
		level = cli.LogLevel
	}
	logger := setupLogger(level)

	simCfg := simulator.Config{
		Hands:         cfg.Simulation.Hands,
		Players:       cfg.Simulation.Players,
		Workers:       cfg.Simulation.Workers,
		Seed:          cfg.Simulation.Seed,
		SmallBlind:    cfg.Table.SmallBlind,
		BigBlind:      cfg.Table.BigBlind,
		StartingChips: cfg.Table.StartingChips,
		Logger:        logger,
	}
	if s.Hands > 0 {
		simCfg.Hands = s.Hands
	}
	if s.Players > 0 {
		simCfg.Players = s.Players
	}
	if s.Workers > 0 {
		simCfg.Workers = s.Workers
	}
	if s.Seed != 0 {
		simCfg.Seed = s.Seed
	}

	sim, err := simulator.New(simCfg)
	if err != nil {
		return err
	}
	stats, err := sim.Run()
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Results over %d hands", stats.Hands())))
	fmt.Printf("Uncontested: %d (%.1f%%)\n\n",
		stats.Uncontested(),
		100*float64(stats.Uncontested())/float64(stats.Hands()))
	for _, ps := range stats.Players() {
		fmt.Printf("%-14s wins %5d   net %+d\n", ps.Name, ps.Wins, ps.Net)
	}
	if stats.Abandoned() > 0 {
		fmt.Printf("\nAbandoned (deck exhausted): %d\n", stats.Abandoned())
	}
	return nil
}

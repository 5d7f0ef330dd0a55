// Package config loads table and simulation settings from HCL files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete configuration file.
type Config struct {
	LogLevel   string              `hcl:"log_level,optional"`
	Table      *TableSettings      `hcl:"table,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

// TableSettings configures a single table. Limit betting is the default;
// no_limit opts out so that an omitted flag never silently changes the
// game.
type TableSettings struct {
	SmallBlind    int  `hcl:"small_blind,optional"`
	BigBlind      int  `hcl:"big_blind,optional"`
	BetLimit      int  `hcl:"bet_limit,optional"`
	StartingChips int  `hcl:"starting_chips,optional"`
	TimeoutMS     int  `hcl:"timeout_ms,optional"`
	NoLimit       bool `hcl:"no_limit,optional"`
}

// SimulationSettings configures batch simulation runs.
type SimulationSettings struct {
	Hands   int   `hcl:"hands,optional"`
	Players int   `hcl:"players,optional"`
	Workers int   `hcl:"workers,optional"`
	Seed    int64 `hcl:"seed,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Table: &TableSettings{
			SmallBlind:    5,
			BigBlind:      10,
			BetLimit:      10,
			StartingChips: 1000,
			TimeoutMS:     10000,
		},
		Simulation: &SimulationSettings{
			Hands:   1000,
			Players: 3,
			Workers: 4,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults rather than an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parsing %s: %s", filename, diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes configuration from an in-memory HCL document.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parsing %s: %s", filename, diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var cfg Config
	diags := gohcl.DecodeBody(body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: decoding: %s", diags.Error())
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Table == nil {
		c.Table = defaults.Table
	} else {
		if c.Table.SmallBlind == 0 {
			c.Table.SmallBlind = defaults.Table.SmallBlind
		}
		if c.Table.BigBlind == 0 {
			c.Table.BigBlind = defaults.Table.BigBlind
		}
		if c.Table.BetLimit == 0 {
			c.Table.BetLimit = c.Table.BigBlind
		}
		if c.Table.StartingChips == 0 {
			c.Table.StartingChips = defaults.Table.StartingChips
		}
		if c.Table.TimeoutMS == 0 {
			c.Table.TimeoutMS = defaults.Table.TimeoutMS
		}
	}
	if c.Simulation == nil {
		c.Simulation = defaults.Simulation
	} else {
		if c.Simulation.Hands == 0 {
			c.Simulation.Hands = defaults.Simulation.Hands
		}
		if c.Simulation.Players == 0 {
			c.Simulation.Players = defaults.Simulation.Players
		}
		if c.Simulation.Workers == 0 {
			c.Simulation.Workers = defaults.Simulation.Workers
		}
	}
}

// Validate rejects configurations the engine would refuse anyway, with
// friendlier messages than a failed hand setup.
func (c *Config) Validate() error {
	t := c.Table
	if t.SmallBlind <= 0 || t.BigBlind <= 0 {
		return fmt.Errorf("config: blinds must be positive (small %d, big %d)", t.SmallBlind, t.BigBlind)
	}
	if t.SmallBlind > t.BigBlind {
		return fmt.Errorf("config: small blind %d exceeds big blind %d", t.SmallBlind, t.BigBlind)
	}
	if t.BetLimit <= 0 {
		return fmt.Errorf("config: bet limit must be positive, got %d", t.BetLimit)
	}
	if t.StartingChips <= 0 {
		return fmt.Errorf("config: starting chips must be positive, got %d", t.StartingChips)
	}
	s := c.Simulation
	if s.Hands <= 0 {
		return fmt.Errorf("config: simulation hands must be positive, got %d", s.Hands)
	}
	if s.Players < 2 || s.Players > 6 {
		return fmt.Errorf("config: simulation players must be 2 through 6, got %d", s.Players)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}

// Timeout returns the per-decision deadline as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Table.TimeoutMS) * time.Millisecond
}

package simulator

import (
	"fmt"
	"sort"
	"sync"
)

// HandResult is the settlement of one simulated hand, reduced to what the
// statistics care about.
type HandResult struct {
	HandID      string
	Winners     []string
	Uncontested bool
	Net         map[string]int
}

// PlayerStats aggregates one lineup player's results.
type PlayerStats struct {
	Name string
	Wins int
	Net  int
}

// Statistics accumulates hand results across workers. Safe for concurrent
// Add.
type Statistics struct {
	mu          sync.Mutex
	hands       int
	uncontested int
	abandoned   int
	players     map[string]*PlayerStats
}

// NewStatistics creates an empty accumulator.
func NewStatistics() *Statistics {
	return &Statistics{players: make(map[string]*PlayerStats)}
}

// Add records one hand result.
func (s *Statistics) Add(result HandResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hands++
	if result.Uncontested {
		s.uncontested++
	}
	for name, net := range result.Net {
		ps := s.players[name]
		if ps == nil {
			ps = &PlayerStats{Name: name}
			s.players[name] = ps
		}
		ps.Net += net
	}
	for _, winner := range result.Winners {
		if ps := s.players[winner]; ps != nil {
			ps.Wins++
		}
	}
}

// AddAbandoned records a hand that was aborted before settlement, such as
// one that exhausted the deck. Abandoned hands move no chips and do not
// count toward Hands.
func (s *Statistics) AddAbandoned() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.abandoned++
}

// Hands returns the number of hands recorded.
func (s *Statistics) Hands() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hands
}

// Uncontested returns how many hands ended without a showdown.
func (s *Statistics) Uncontested() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uncontested
}

// Abandoned returns how many hands were aborted before settlement.
func (s *Statistics) Abandoned() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.abandoned
}

// Players returns per-player aggregates sorted by net result, best first.
func (s *Statistics) Players() []PlayerStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	players := make([]PlayerStats, 0, len(s.players))
	for _, ps := range s.players {
		players = append(players, *ps)
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].Net != players[j].Net {
			return players[i].Net > players[j].Net
		}
		return players[i].Name < players[j].Name
	})
	return players
}

// Validate checks that the aggregated results are zero-sum. Chips are
// conserved within every hand, so any imbalance here is an engine bug.
func (s *Statistics) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, ps := range s.players {
		total += ps.Net
	}
	if total != 0 {
		return fmt.Errorf("simulator: results are not zero-sum, off by %d chips", total)
	}
	return nil
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jkraybill/triple-draw-manager/internal/bot"
	"github.com/jkraybill/triple-draw-manager/internal/config"
	"github.com/jkraybill/triple-draw-manager/internal/deck"
	"github.com/jkraybill/triple-draw-manager/internal/game"
)

// PlayCmd plays interactive hands against the built-in bots.
type PlayCmd struct {
	Opponents int   `help:"Number of bot opponents (1-5)" default:"2"`
	Hands     int   `help:"Number of hands to play" default:"1"`
	Seed      int64 `help:"RNG seed, 0 for random"`
}

func (p *PlayCmd) Run(cli *CLI) error {
	if p.Opponents < 1 || p.Opponents > 5 {
		return fmt.Errorf("opponents must be 1 through 5, got %d", p.Opponents)
	}
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if cli.LogLevel != "" {
		level = cli.LogLevel
	}
	logger := setupLogger(level)

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	human := newHumanAgent(os.Stdin, os.Stdout)
	const humanID = "you"

	chips := map[string]int{humanID: cfg.Table.StartingChips}
	names := []string{humanID}
	agents := map[string]game.PlayerAgent{humanID: human}
	for i := 0; i < p.Opponents; i++ {
		name := fmt.Sprintf("bot-%d", i+1)
		names = append(names, name)
		chips[name] = cfg.Table.StartingChips
		if i%2 == 0 {
			agents[name] = bot.NewCallBot(logger)
		} else {
			agents[name] = bot.NewRandBot(rng, logger)
		}
	}

	for handNum := 0; handNum < p.Hands; handNum++ {
		seats := make([]game.Seat, 0, len(names))
		funded := 0
		for _, name := range names {
			player, err := game.NewPlayer(name, chips[name])
			if err != nil {
				return err
			}
			if chips[name] <= 0 {
				player.State = game.StateSittingOut
			} else {
				funded++
			}
			seats = append(seats, game.Seat{Player: player, Agent: agents[name]})
		}
		if funded < 2 {
			fmt.Println("Not enough funded players to continue.")
			break
		}

		h, err := game.NewHand(rng, seats,
			game.WithBlinds(cfg.Table.SmallBlind, cfg.Table.BigBlind),
			game.WithBetLimit(cfg.Table.BetLimit),
			game.WithLimitBetting(!cfg.Table.NoLimit),
			game.WithTimeout(cfg.Timeout()),
			game.WithDealerButton(handNum%len(seats)),
			game.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		h.Bus().Subscribe(&tablePrinter{humanID: humanID})

		if _, err := h.Run(); err != nil {
			return err
		}
		for _, seat := range seats {
			chips[seat.Player.ID] = seat.Player.Chips
		}
		fmt.Printf("\nYour stack: %d\n", chips[humanID])
	}
	return nil
}

// humanAgent reads decisions from stdin. Legality is the engine's job; this
// only parses, and the engine will re-ask on an illegal action.
type humanAgent struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newHumanAgent(in io.Reader, out io.Writer) *humanAgent {
	return &humanAgent{scanner: bufio.NewScanner(in), out: out}
}

func (h *humanAgent) GetAction(_ context.Context, snap game.Snapshot) (game.Decision, error) {
	fmt.Fprintf(h.out, "\nYour hand: %s\n", renderCards(snap.Cards))
	fmt.Fprintf(h.out, "Pot %d, to call %d\n", snap.Pot, snap.ToCall)

	labels := make([]string, len(snap.ValidActions))
	for i, a := range snap.ValidActions {
		labels[i] = actionLabel(a)
	}

	for {
		fmt.Fprintf(h.out, "Action [%s]: ", strings.Join(labels, ", "))
		if !h.scanner.Scan() {
			return game.Decision{Action: game.Fold}, nil
		}
		if action, ok := parseAction(strings.TrimSpace(h.scanner.Text())); ok {
			return game.Decision{Action: action}, nil
		}
		fmt.Fprintln(h.out, "Didn't catch that.")
	}
}

func (h *humanAgent) GetDrawAction(_ context.Context, snap game.Snapshot) (game.DrawDecision, error) {
	fmt.Fprintf(h.out, "\nYour hand: %s\n", renderCards(snap.Cards))
	for i, c := range snap.Cards {
		fmt.Fprintf(h.out, "  %d: %s\n", i+1, c)
	}

	for {
		fmt.Fprint(h.out, "Discard which cards? (e.g. \"1 3\", empty to stand pat): ")
		if !h.scanner.Scan() {
			return game.DrawDecision{}, nil
		}
		fields := strings.Fields(h.scanner.Text())
		discard := make([]int, 0, len(fields))
		ok := true
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil || n < 1 || n > 5 {
				ok = false
				break
			}
			discard = append(discard, n-1)
		}
		if ok {
			return game.DrawDecision{Discard: discard}, nil
		}
		fmt.Fprintln(h.out, "Card numbers run 1 through 5.")
	}
}

func (h *humanAgent) ReceivePrivateCards(cards []deck.Card) {
	fmt.Fprintf(h.out, "\nYou hold: %s\n", renderCards(cards))
}

func actionLabel(a game.Action) string {
	switch a {
	case game.Fold:
		return "(f)old"
	case game.Check:
		return "chec(k)"
	case game.Call:
		return "(c)all"
	case game.Bet:
		return "(b)et"
	case game.Raise:
		return "(r)aise"
	case game.AllIn:
		return "(a)ll-in"
	}
	return a.String()
}

func parseAction(input string) (game.Action, bool) {
	switch strings.ToLower(input) {
	case "f", "fold":
		return game.Fold, true
	case "k", "check":
		return game.Check, true
	case "c", "call":
		return game.Call, true
	case "b", "bet":
		return game.Bet, true
	case "r", "raise":
		return game.Raise, true
	case "a", "allin", "all-in":
		return game.AllIn, true
	}
	return game.Fold, false
}

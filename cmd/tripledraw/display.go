package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jkraybill/triple-draw-manager/internal/deck"
	"github.com/jkraybill/triple-draw-manager/internal/game"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	potStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

	redCard = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Background(lipgloss.Color("255")).
		Padding(0, 1)
	blackCard = lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("255")).
			Padding(0, 1)
)

func renderCard(c deck.Card) string {
	if c.Suit.IsRed() {
		return redCard.Render(c.String())
	}
	return blackCard.Render(c.String())
}

func renderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}

// tablePrinter narrates public events for the interactive game. It never
// prints another player's cards; those only exist at showdown.
type tablePrinter struct {
	humanID string
}

func (p *tablePrinter) OnEvent(e game.Event) {
	switch ev := e.(type) {
	case game.HandStartedEvent:
		fmt.Println(headerStyle.Render("--- New hand ---"))
	case game.BlindPostedEvent:
		fmt.Printf("%s posts the %s blind (%d)\n", ev.PlayerID, ev.Blind, ev.Amount)
	case game.BettingRoundStartedEvent:
		fmt.Println(headerStyle.Render(phaseLabel(ev.Phase)))
	case game.PlayerActedEvent:
		if ev.PlayerID == p.humanID {
			return
		}
		suffix := ""
		if ev.AllIn {
			suffix = " (all in)"
		}
		fmt.Printf("%s: %s%s   %s\n", ev.PlayerID, ev.Action, suffix,
			potStyle.Render(fmt.Sprintf("pot %d", ev.Pot)))
	case game.PlayerTimeoutEvent:
		fmt.Printf("%s timed out\n", ev.PlayerID)
	case game.DrawPhaseStartedEvent:
		fmt.Println(headerStyle.Render(phaseLabel(ev.Phase)))
	case game.PlayerDrewEvent:
		if ev.StoodPat {
			fmt.Printf("%s stands pat\n", ev.PlayerID)
		} else {
			fmt.Printf("%s draws %d\n", ev.PlayerID, ev.Discarded)
		}
	case game.HandEndedEvent:
		for _, sd := range ev.Showdown {
			fmt.Printf("%s shows %s  (%s)\n", sd.PlayerID, renderCards(sd.Cards), sd.Description)
		}
		for _, w := range ev.Winners {
			fmt.Println(winStyle.Render(fmt.Sprintf("%s wins %d", w.PlayerID, w.Amount)))
		}
	}
}

func phaseLabel(p game.Phase) string {
	switch p {
	case game.PreDraw:
		return "Pre-draw betting"
	case game.FirstDraw:
		return "First draw"
	case game.PostFirstDraw:
		return "Betting after the first draw"
	case game.SecondDraw:
		return "Second draw"
	case game.PostSecondDraw:
		return "Betting after the second draw"
	case game.ThirdDraw:
		return "Third draw"
	case game.PostThirdDraw:
		return "Final betting"
	default:
		return p.String()
	}
}

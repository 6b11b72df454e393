package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/application"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

var decisionOptions = []string{"Hit", "Stand"}

func parseDecision(option string) (blackjack.Decision, error) {
	switch strings.ToLower(strings.TrimSpace(option)) {
	case "hit", "h":
		return blackjack.Hit, nil
	case "stand", "s":
		return blackjack.Stand, nil
	default:
		return "", fmt.Errorf("%w: %q", blackjack.ErrInvalidDecision, option)
	}
}

var errNotANumber = errors.New("not a number")

const notANumberMessage = "Please enter a valid number!"

// parseBet reads a bet typed by the player. Range checks are left to the
// bankroll.
func parseBet(input string) (int, error) {
	bet, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotANumber, input)
	}
	return bet, nil
}

func invalidBetMessage(requested, balance int) string {
	if requested <= 0 {
		return "Bet must be positive!"
	}
	return fmt.Sprintf("You only have %d chips!", balance)
}

func handLine(cards []blackjack.Card, hidden bool) string {
	parts := make([]string, 0, len(cards)+1)
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	if hidden {
		parts = append(parts, blackjack.FaceDown)
	}
	return strings.Join(parts, " - ")
}

func valueLabel(value int, soft bool) string {
	switch {
	case value > blackjack.BlackjackValue:
		return fmt.Sprintf("%d (bust)", value)
	case soft:
		return fmt.Sprintf("soft %d", value)
	default:
		return strconv.Itoa(value)
	}
}

// dealerNarration describes what the dealer did after the player stood.
func dealerNarration(v blackjack.View) []string {
	if !slices.Contains(v.Steps, blackjack.PhaseDealerReveal) {
		return nil
	}
	lines := []string{fmt.Sprintf("Dealer reveals %s", v.DealerCards[1].String())}
	for _, c := range v.DealerCards[2:] {
		lines = append(lines, fmt.Sprintf("Dealer hits... %s", c.String()))
	}
	return lines
}

func outcomeMessage(v blackjack.View, s blackjack.Settlement) string {
	switch s.Outcome {
	case blackjack.PlayerBlackjackPush:
		return "Blackjack! Dealer also has Blackjack. Push! Bet returned."
	case blackjack.PlayerBlackjackWin:
		return fmt.Sprintf("Blackjack! You win %d chips! (Blackjack pays 3:2)", s.Amount)
	case blackjack.PlayerBust:
		return fmt.Sprintf("Bust! You lose %d chips.", s.Amount)
	case blackjack.DealerBlackjack:
		return fmt.Sprintf("Dealer has Blackjack! You lose %d chips.", s.Amount)
	case blackjack.PlayerWin:
		if v.DealerValue > blackjack.BlackjackValue {
			return fmt.Sprintf("Dealer busts! You win %d chips!", s.Amount)
		}
		return fmt.Sprintf("You win %d chips! (%d vs %d)", s.Amount, v.PlayerValue, v.DealerValue)
	case blackjack.PlayerLose:
		return fmt.Sprintf("Dealer wins! (%d vs %d) You lose %d chips.", v.DealerValue, v.PlayerValue, s.Amount)
	case blackjack.Push:
		return fmt.Sprintf("Push! It's a tie! (%d) Bet returned.", v.PlayerValue)
	default:
		return s.Outcome.String()
	}
}

func outcomeStyle(e blackjack.Effect) func(a ...interface{}) string {
	switch e {
	case blackjack.EffectWin:
		return pterm.LightGreen
	case blackjack.EffectLose:
		return pterm.LightRed
	default:
		return pterm.LightYellow
	}
}

func tablePanels(v blackjack.View, balance int) [][]pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	dealerValue := valueLabel(v.DealerValue, false)
	if v.HoleHidden {
		dealerValue = "showing " + dealerValue
	}
	dealer := pbox.WithTitle("Dealer").WithTitleTopLeft().Sprintf("%s\nValue: %s",
		handLine(v.DealerCards, v.HoleHidden), dealerValue)
	player := pbox.WithTitle("You").WithTitleTopLeft().Sprintf("%s\nValue: %s\nBet: %d\nBankroll: %d",
		handLine(v.PlayerCards, false), valueLabel(v.PlayerValue, v.PlayerSoft), v.Bet, balance)
	return [][]pterm.Panel{
		{{Data: dealer}},
		{{Data: player}},
	}
}

func resultPanel(v blackjack.View, s blackjack.Settlement, balance int) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	lines := dealerNarration(v)
	lines = append(lines, outcomeStyle(s.Effect)(outcomeMessage(v, s)), fmt.Sprintf("Total: %d", balance))
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|RESULT|")).WithTitleTopCenter().Sprint(strings.Join(lines, "\n"))}
}

func summaryTable(stats application.Stats) pterm.TableData {
	return pterm.TableData{
		{"Rounds", "Wins", "Losses", "Pushes", "Blackjacks", "Busts", "Net", "Win rate"},
		{
			strconv.Itoa(stats.Rounds),
			strconv.Itoa(stats.Wins),
			strconv.Itoa(stats.Losses),
			strconv.Itoa(stats.Pushes),
			strconv.Itoa(stats.Blackjacks),
			strconv.Itoa(stats.Busts),
			fmt.Sprintf("%+d", stats.NetChips),
			fmt.Sprintf("%.0f%%", stats.WinRate()*100),
		},
	}
}

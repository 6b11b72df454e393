package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

// console prompts and renders on the terminal with pterm.
type console struct {
	confirmStand bool
	balance      int

	textInput func(text string) (string, error)
	choose    func(text string, options []string) (string, error)
	confirm   func(text string) (bool, error)
}

func newConsole(confirmStand bool) *console {
	return &console{
		confirmStand: confirmStand,
		textInput: func(text string) (string, error) {
			return pterm.DefaultInteractiveTextInput.WithDefaultText(text).Show()
		},
		choose: func(text string, options []string) (string, error) {
			return pterm.DefaultInteractiveSelect.WithDefaultText(text).WithOptions(options).Show()
		},
		confirm: func(text string) (bool, error) {
			return pterm.DefaultInteractiveConfirm.WithDefaultText(text).WithDefaultValue(true).Show()
		},
	}
}

func (c *console) Bet(ctx context.Context, balance int) (int, error) {
	c.balance = balance
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		pterm.Println()
		input, err := c.textInput(fmt.Sprintf("You have %d chips. How much do you want to bet?", balance))
		if err != nil {
			return 0, err
		}
		bet, err := parseBet(input)
		if errors.Is(err, errNotANumber) {
			pterm.Error.Println(notANumberMessage)
			continue
		}
		return bet, err
	}
}

func (c *console) Decide(ctx context.Context, v blackjack.View) (blackjack.Decision, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		selected, err := c.choose("Do you want to hit or stand?", decisionOptions)
		if err != nil {
			return "", err
		}
		d, err := parseDecision(selected)
		if err != nil {
			pterm.Error.Println("Invalid input. Please choose Hit or Stand.")
			continue
		}
		if d == blackjack.Stand && c.confirmStand {
			ok, err := c.confirm(fmt.Sprintf("Stand on %s?", valueLabel(v.PlayerValue, v.PlayerSoft)))
			if err != nil {
				return "", err
			}
			if !ok {
				pterm.Info.Println("Action cancelled.")
				continue
			}
		}
		return d, nil
	}
}

func (c *console) Continue(ctx context.Context, balance int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return c.confirm("Play again?")
}

func (c *console) InvalidBet(requested, balance int) {
	pterm.Error.Println(invalidBetMessage(requested, balance))
}

func (c *console) Round(v blackjack.View) {
	pterm.DefaultPanel.WithPanels(tablePanels(v, c.balance)).Render()
}

func (c *console) Settled(v blackjack.View, s blackjack.Settlement, balance int) {
	c.balance = balance
	panels := tablePanels(v, balance)
	panels = append(panels, []pterm.Panel{resultPanel(v, s, balance)})
	pterm.DefaultPanel.WithPanels(panels).Render()
}

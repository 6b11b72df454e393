package main

import (
	"context"
	"errors"
	"testing"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

func scriptedConsole(confirmStand bool, inputs []string, choices []string, confirms []bool, confirmErr error) *console {
	return &console{
		confirmStand: confirmStand,
		textInput: func(string) (string, error) {
			in := inputs[0]
			inputs = inputs[1:]
			return in, nil
		},
		choose: func(string, []string) (string, error) {
			choice := choices[0]
			choices = choices[1:]
			return choice, nil
		},
		confirm: func(string) (bool, error) {
			if confirmErr != nil {
				return false, confirmErr
			}
			ok := confirms[0]
			confirms = confirms[1:]
			return ok, nil
		},
	}
}

func TestBetRepromptsOnNonNumber(t *testing.T) {
	c := scriptedConsole(false, []string{"ten", "", "15"}, nil, nil, nil)
	bet, err := c.Bet(context.Background(), 100)
	if err != nil {
		t.Fatal(err)
	}
	if bet != 15 {
		t.Fatalf("expected 15, got %d", bet)
	}
}

func TestDecideConfirmStand(t *testing.T) {
	c := scriptedConsole(true, nil, []string{"Stand", "Hit"}, []bool{false}, nil)
	d, err := c.Decide(context.Background(), blackjack.View{PlayerValue: 12})
	if err != nil {
		t.Fatal(err)
	}
	if d != blackjack.Hit {
		t.Fatalf("cancelled stand should ask again, got %s", d)
	}
}

func TestDecideConfirmError(t *testing.T) {
	closed := errors.New("stdin closed")
	c := scriptedConsole(true, nil, []string{"Stand", "Stand"}, nil, closed)
	if _, err := c.Decide(context.Background(), blackjack.View{PlayerValue: 18}); !errors.Is(err, closed) {
		t.Fatalf("expected the confirm error, got %v", err)
	}
}

func TestPromptsStopOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := scriptedConsole(false, nil, nil, nil, nil)
	if _, err := c.Bet(ctx, 100); !errors.Is(err, context.Canceled) {
		t.Fatalf("Bet: expected context.Canceled, got %v", err)
	}
	if _, err := c.Decide(ctx, blackjack.View{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Decide: expected context.Canceled, got %v", err)
	}
	if _, err := c.Continue(ctx, 100); !errors.Is(err, context.Canceled) {
		t.Fatalf("Continue: expected context.Canceled, got %v", err)
	}
}

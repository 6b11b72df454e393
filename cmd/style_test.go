package main

import (
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/application"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

func TestParseDecision(t *testing.T) {
	tests := []struct {
		input    string
		expected blackjack.Decision
		err      bool
	}{
		{"Hit", blackjack.Hit, false},
		{"stand", blackjack.Stand, false},
		{" h ", blackjack.Hit, false},
		{"S", blackjack.Stand, false},
		{"double", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := parseDecision(tt.input)
		if tt.err {
			if !errors.Is(err, blackjack.ErrInvalidDecision) {
				t.Errorf("parseDecision(%q) error = %v, want ErrInvalidDecision", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("parseDecision(%q) = %s, %v", tt.input, got, err)
		}
	}
}

func TestParseBet(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		err      bool
	}{
		{"25", 25, false},
		{" 100 ", 100, false},
		{"-3", -3, false},
		{"0", 0, false},
		{"ten", 0, true},
		{"", 0, true},
		{"2.5", 0, true},
	}
	for _, tt := range tests {
		got, err := parseBet(tt.input)
		if tt.err {
			if !errors.Is(err, errNotANumber) {
				t.Errorf("parseBet(%q) error = %v, want errNotANumber", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("parseBet(%q) = %d, %v, want %d", tt.input, got, err, tt.expected)
		}
	}
}

func TestInvalidBetMessage(t *testing.T) {
	if got := invalidBetMessage(0, 50); got != "Bet must be positive!" {
		t.Errorf("unexpected message %q", got)
	}
	if got := invalidBetMessage(80, 50); got != "You only have 50 chips!" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestValueLabel(t *testing.T) {
	tests := []struct {
		value    int
		soft     bool
		expected string
	}{
		{17, true, "soft 17"},
		{17, false, "17"},
		{25, false, "25 (bust)"},
	}
	for _, tt := range tests {
		if got := valueLabel(tt.value, tt.soft); got != tt.expected {
			t.Errorf("valueLabel(%d, %v) = %q, want %q", tt.value, tt.soft, got, tt.expected)
		}
	}
}

func TestHandLine(t *testing.T) {
	cards := []blackjack.Card{blackjack.MustCard(blackjack.Heart, blackjack.Ace), blackjack.MustCard(blackjack.Spade, 9)}
	if got := pterm.RemoveColorFromString(handLine(cards, false)); got != "A♥ - 9♠" {
		t.Errorf("unexpected hand line %q", got)
	}
	if got := pterm.RemoveColorFromString(handLine(cards[:1], true)); got != "A♥ - "+blackjack.FaceDown {
		t.Errorf("unexpected hidden hand line %q", got)
	}
}

func playedView(t *testing.T, ranks ...blackjack.Rank) (blackjack.View, blackjack.Settlement) {
	t.Helper()
	cards := make([]blackjack.Card, len(ranks))
	for i, r := range ranks {
		cards[i] = blackjack.MustCard(blackjack.Club, r)
	}
	b := blackjack.NewBankroll(100)
	r, err := blackjack.NewRound(10, b, blackjack.WithShoe(blackjack.NewStackedShoe(cards...)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Play(blackjack.PlayerFunc(func(blackjack.View) (blackjack.Decision, error) {
		return blackjack.Stand, nil
	})); err != nil {
		t.Fatal(err)
	}
	s, err := r.Settle(b)
	if err != nil {
		t.Fatal(err)
	}
	return r.View(), s
}

func TestOutcomeMessage(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []blackjack.Rank
		expected string
	}{
		{"natural", []blackjack.Rank{blackjack.Ace, 9, blackjack.King, 8}, "Blackjack! You win 15 chips! (Blackjack pays 3:2)"},
		{"dealer bust", []blackjack.Rank{10, 6, 8, 10, blackjack.King}, "Dealer busts! You win 10 chips!"},
		{"win", []blackjack.Rank{10, 10, 9, 8}, "You win 10 chips! (19 vs 18)"},
		{"lose", []blackjack.Rank{10, 10, 7, 8}, "Dealer wins! (18 vs 17) You lose 10 chips."},
		{"push", []blackjack.Rank{10, 10, 8, 8}, "Push! It's a tie! (18) Bet returned."},
		{"dealer natural", []blackjack.Rank{10, blackjack.Ace, 8, blackjack.Queen}, "Dealer has Blackjack! You lose 10 chips."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, s := playedView(t, tt.ranks...)
			if got := outcomeMessage(v, s); got != tt.expected {
				t.Errorf("outcomeMessage = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDealerNarration(t *testing.T) {
	v, _ := playedView(t, 10, 6, 8, 5, 3, 4)
	lines := dealerNarration(v)
	for i := range lines {
		lines[i] = pterm.RemoveColorFromString(lines[i])
	}
	expected := []string{"Dealer reveals 5♣", "Dealer hits... 3♣", "Dealer hits... 4♣"}
	if !slices.Equal(lines, expected) {
		t.Fatalf("narration = %q, want %q", lines, expected)
	}

	natural, _ := playedView(t, blackjack.Ace, 9, blackjack.King, 7)
	if lines := dealerNarration(natural); len(lines) != 0 {
		t.Fatalf("early settlement should not narrate the dealer, got %q", lines)
	}
}

func TestSummaryTable(t *testing.T) {
	data := summaryTable(application.Stats{Rounds: 4, Wins: 3, Losses: 1, NetChips: -5})
	if len(data) != 2 || len(data[0]) != len(data[1]) {
		t.Fatalf("malformed table %v", data)
	}
	if data[1][6] != "-5" || data[1][7] != "75%" {
		t.Fatalf("unexpected row %v", data[1])
	}
}

func TestLogLevel(t *testing.T) {
	tests := map[slog.Level]pterm.LogLevel{
		slog.LevelDebug: pterm.LogLevelDebug,
		slog.LevelInfo:  pterm.LogLevelInfo,
		slog.LevelWarn:  pterm.LogLevelWarn,
		slog.LevelError: pterm.LogLevelError,
	}
	for in, expected := range tests {
		if got := logLevel(in); got != expected {
			t.Errorf("logLevel(%v) = %v, want %v", in, got, expected)
		}
	}
}

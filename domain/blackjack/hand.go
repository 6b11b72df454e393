package blackjack

import (
	"slices"
	"strings"
)

// BlackjackValue is the best possible hand total.
const BlackjackValue = 21

// Hand is an append-only sequence of cards held by the player or the dealer.
type Hand struct {
	cards []Card
}

// NewHand returns a hand holding cards, in order.
func NewHand(cards ...Card) Hand {
	return Hand{cards: slices.Clone(cards)}
}

// Add appends a card to the hand.
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in the order they were dealt.
func (h Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

func (h Hand) Len() int {
	return len(h.cards)
}

// Value returns the hand total under the soft Ace rule: every Ace starts at 11
// and is recounted as 1, one at a time, while the total is over 21. The result
// may still exceed 21; detecting the bust is up to the caller.
func (h Hand) Value() int {
	total, _ := h.evaluate()
	return total
}

// IsSoft reports whether at least one Ace is still counted as 11.
func (h Hand) IsSoft() bool {
	_, soft := h.evaluate()
	return soft > 0
}

// IsBlackjack reports a natural: exactly two cards totalling 21.
func (h Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == BlackjackValue
}

func (h Hand) IsBust() bool {
	return h.Value() > BlackjackValue
}

// evaluate returns the total and the number of Aces still counted as 11.
func (h Hand) evaluate() (total int, soft int) {
	for _, c := range h.cards {
		total += c.Value()
		if c.Rank() == Ace {
			soft++
		}
	}
	for total > BlackjackValue && soft > 0 {
		total -= 10
		soft--
	}
	return total, soft
}

// String lists the card labels separated by commas.
func (h Hand) String() string {
	labels := make([]string, len(h.cards))
	for i, c := range h.cards {
		labels[i] = c.Label()
	}
	return strings.Join(labels, ", ")
}

package blackjack

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Suit of a card.
type Suit uint8

const (
	Club    Suit = iota // ♣ (black)
	Diamond             // ♦ (red)
	Heart               // ♥ (red)
	Spade               // ♠ (black)
)

// Rank of a card: Ace is 1, numerals keep their value, faces are 11-13.
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// FaceDown is the display glyph for the dealer's hidden card.
const FaceDown = "▓"

// Card represents a playing card with suit and rank.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Club, Diamond, Heart or Spade
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spade || rank < Ace || rank > King {
		return Card{}, fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// ConvertCard maps 1..52 onto the deck with the suit order
// ♣clubs -> ♦diamonds -> ♥hearts -> ♠spades, Ace through King within a suit.
func ConvertCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, fmt.Errorf("%w: index %d out of range", ErrInvalidCard, rawCard)
	}
	return MustCard(Suit((rawCard-1)/13), Rank((rawCard-1)%13+1)), nil
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Rank() Rank {
	return c.rank
}

// Value returns the nominal blackjack points of the card. Aces count 11 here;
// Hand.Value softens them.
func (c Card) Value() int {
	switch {
	case c.rank == Ace:
		return 11
	case c.rank >= Jack:
		return 10
	default:
		return int(c.rank)
	}
}

// Label returns the plain text form of the card, e.g. "A♥" or "10♣".
func (c Card) Label() string {
	return c.rankLabel() + c.suitSymbol()
}

// String returns the card label with the suit coloured for the terminal.
func (c Card) String() string {
	suit := c.suitSymbol()
	switch c.suit {
	case Diamond, Heart:
		suit = pterm.LightRed(suit)
	default:
		suit = pterm.Black(suit)
	}
	return c.rankLabel() + suit
}

func (c Card) rankLabel() string {
	switch c.rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", c.rank)
	}
}

func (c Card) suitSymbol() string {
	switch c.suit {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// MustCard is NewCard for suits and ranks known to be valid. It panics
// otherwise.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

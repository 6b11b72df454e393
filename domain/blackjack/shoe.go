package blackjack

import (
	"crypto/cipher"
	"slices"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// DeckSize is the number of distinct cards in a fresh shoe.
const DeckSize = 52

// Shoe is the working deck for a round. Cards are drawn from the end of the
// slice.
type Shoe struct {
	cards []Card
}

// NewShoe builds the 52 standard cards in a fixed order. It does not shuffle.
func NewShoe() *Shoe {
	cards := make([]Card, 0, DeckSize)
	for i := 1; i <= DeckSize; i++ {
		c, _ := ConvertCard(i)
		cards = append(cards, c)
	}
	return &Shoe{cards: cards}
}

// NewShuffledShoe builds a fresh shoe and shuffles it with stream.
func NewShuffledShoe(stream cipher.Stream) *Shoe {
	s := NewShoe()
	s.ShuffleWith(stream)
	return s
}

// NewStackedShoe returns a shoe that deals exactly the given cards, first
// argument first.
func NewStackedShoe(cards ...Card) *Shoe {
	stacked := slices.Clone(cards)
	slices.Reverse(stacked)
	return &Shoe{cards: stacked}
}

// Shuffle permutes the remaining cards uniformly using system randomness.
func (s *Shoe) Shuffle() {
	s.ShuffleWith(deck.RandomStream())
}

// ShuffleWith permutes the remaining cards uniformly using stream.
func (s *Shoe) ShuffleWith(stream cipher.Stream) {
	deck.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}, stream)
}

// Draw removes and returns the next card.
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrExhaustedShoe
	}
	c := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return c, nil
}

// Len returns the number of cards left.
func (s *Shoe) Len() int {
	return len(s.cards)
}

// Cards returns a copy of the remaining cards in dealing order.
func (s *Shoe) Cards() []Card {
	out := slices.Clone(s.cards)
	slices.Reverse(out)
	return out
}

package ledger

import "github.com/luca-patrignani/blackjack/domain/blackjack"

// Block is one link of the journal.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Entry     Entry  `json:"entry"`
}

// Entry describes a settled round and the balance it left behind.
type Entry struct {
	RoundID     string            `json:"round_id"`
	Bet         int               `json:"bet"`
	Outcome     blackjack.Outcome `json:"outcome"`
	Delta       int               `json:"delta"`
	Balance     int               `json:"balance"`
	PlayerCards []string          `json:"player_cards,omitempty"`
	DealerCards []string          `json:"dealer_cards,omitempty"`
}

// NewEntry builds the journal entry of a settled round. balance is the
// bankroll after the settlement was applied.
func NewEntry(r *blackjack.Round, s blackjack.Settlement, balance int) Entry {
	return Entry{
		RoundID:     s.RoundID,
		Bet:         r.Bet(),
		Outcome:     s.Outcome,
		Delta:       s.Delta(),
		Balance:     balance,
		PlayerCards: labels(r.PlayerHand().Cards()),
		DealerCards: labels(r.DealerHand().Cards()),
	}
}

func labels(cards []blackjack.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Label()
	}
	return out
}

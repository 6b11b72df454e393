package application

import (
	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/ledger"
)

// Stats are the running totals of a session.
type Stats struct {
	Rounds     int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	Busts      int
	NetChips   int
	BiggestWin int
	Opening    int
	Closing    int
}

// NewStats folds journal entries into session totals.
func NewStats(opening int, entries []ledger.Entry) Stats {
	s := Stats{Opening: opening, Closing: opening}
	for _, e := range entries {
		s.add(e)
	}
	return s
}

func (s *Stats) add(e ledger.Entry) {
	s.Rounds++
	switch e.Outcome.Effect() {
	case blackjack.EffectWin:
		s.Wins++
	case blackjack.EffectLose:
		s.Losses++
	default:
		s.Pushes++
	}
	switch e.Outcome {
	case blackjack.PlayerBlackjackWin, blackjack.PlayerBlackjackPush:
		s.Blackjacks++
	case blackjack.PlayerBust:
		s.Busts++
	}
	s.NetChips += e.Delta
	s.BiggestWin = max(s.BiggestWin, e.Delta)
	s.Closing = e.Balance
}

// WinRate counts pushes as half a win.
func (s Stats) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return (float64(s.Wins) + 0.5*float64(s.Pushes)) / float64(s.Rounds)
}

package blackjack

// Outcome is the terminal result of a round.
type Outcome string

const (
	OutcomeNone         Outcome = ""
	PlayerBlackjackPush Outcome = "player_blackjack_push"
	PlayerBlackjackWin  Outcome = "player_blackjack_win"
	PlayerBust          Outcome = "player_bust"
	DealerBlackjack     Outcome = "dealer_blackjack"
	PlayerWin           Outcome = "player_win"
	PlayerLose          Outcome = "player_lose"
	Push                Outcome = "push"
)

// Effect is what an outcome does to the bankroll.
type Effect string

const (
	EffectWin  Effect = "win"
	EffectLose Effect = "lose"
	EffectPush Effect = "push"
)

// Effect maps the outcome onto exactly one bankroll effect.
func (o Outcome) Effect() Effect {
	switch o {
	case PlayerBlackjackWin, PlayerWin:
		return EffectWin
	case PlayerBust, DealerBlackjack, PlayerLose:
		return EffectLose
	default:
		return EffectPush
	}
}

// Amount returns the chips won or lost for a bet. A natural pays 3:2 rounded
// down; every other win or loss is the bet itself; a push moves nothing.
func (o Outcome) Amount(bet int) int {
	switch o {
	case PlayerBlackjackWin:
		return BlackjackPayout(bet)
	case PlayerBlackjackPush, Push, OutcomeNone:
		return 0
	default:
		return bet
	}
}

func (o Outcome) String() string {
	switch o {
	case PlayerBlackjackPush:
		return "Blackjack push"
	case PlayerBlackjackWin:
		return "Blackjack"
	case PlayerBust:
		return "Bust"
	case DealerBlackjack:
		return "Dealer blackjack"
	case PlayerWin:
		return "Win"
	case PlayerLose:
		return "Lose"
	case Push:
		return "Push"
	default:
		return "None"
	}
}

// BlackjackPayout returns floor(bet * 1.5).
func BlackjackPayout(bet int) int {
	return bet * 3 / 2
}

// Settlement is the bankroll change produced by a finished round.
type Settlement struct {
	RoundID string  `json:"round_id"`
	Outcome Outcome `json:"outcome"`
	Effect  Effect  `json:"effect"`
	Amount  int     `json:"amount"`
}

// NewSettlement builds the settlement of outcome for bet.
func NewSettlement(roundID string, outcome Outcome, bet int) Settlement {
	return Settlement{
		RoundID: roundID,
		Outcome: outcome,
		Effect:  outcome.Effect(),
		Amount:  outcome.Amount(bet),
	}
}

// Delta returns the signed chip change.
func (s Settlement) Delta() int {
	switch s.Effect {
	case EffectWin:
		return s.Amount
	case EffectLose:
		return -s.Amount
	default:
		return 0
	}
}

package blackjack

import (
	"crypto/cipher"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// Phase represents the current state of a round.
type Phase string

const (
	PhaseDealt        Phase = "dealt"
	PhasePlayerTurn   Phase = "player_turn"
	PhaseDealerReveal Phase = "dealer_reveal"
	PhaseDealerTurn   Phase = "dealer_turn"
	PhaseSettled      Phase = "settled"
	PhaseEarlySettled Phase = "early_settled"
)

// Terminal reports whether the round is over in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseSettled || p == PhaseEarlySettled
}

// Decision is a player action during PlayerTurn.
type Decision string

const (
	Hit   Decision = "hit"
	Stand Decision = "stand"
)

// DealerStandsOn is the lowest total the dealer stands on, soft 17 included.
const DealerStandsOn = 17

// DealerShouldHit reports whether the dealer draws on hand.
func DealerShouldHit(h Hand) bool {
	return h.Value() < DealerStandsOn
}

// Player supplies decisions while a round is in PlayerTurn.
type Player interface {
	Decide(v View) (Decision, error)
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(v View) (Decision, error)

func (f PlayerFunc) Decide(v View) (Decision, error) {
	return f(v)
}

// Round drives one bet from the deal to settlement. It exclusively owns its
// shoe and both hands.
type Round struct {
	id      uuid.UUID
	bet     int
	shoe    *Shoe
	stream  cipher.Stream
	player  Hand
	dealer  Hand
	phase   Phase
	outcome Outcome
	steps   []Phase
	settled bool
	logger  *slog.Logger
}

type RoundOption func(Round) Round

// WithShoe deals from shoe as it is, without shuffling it.
func WithShoe(shoe *Shoe) RoundOption {
	return func(r Round) Round {
		r.shoe = shoe
		return r
	}
}

// WithStream shuffles the round's fresh shoe with stream.
func WithStream(stream cipher.Stream) RoundOption {
	return func(r Round) Round {
		r.stream = stream
		return r
	}
}

func WithLogger(logger *slog.Logger) RoundOption {
	return func(r Round) Round {
		if logger != nil {
			r.logger = logger
		}
		return r
	}
}

// NewRound validates the bet against bankroll, builds a fresh shuffled shoe
// unless one is given, and deals the opening cards. The returned round is in
// PlayerTurn or, after a player natural, EarlySettled.
func NewRound(bet int, bankroll *Bankroll, opts ...RoundOption) (*Round, error) {
	if bankroll == nil || !bankroll.CanBet(bet) {
		balance := 0
		if bankroll != nil {
			balance = bankroll.Balance()
		}
		return nil, fmt.Errorf("%w: %d with balance %d", ErrInvalidBet, bet, balance)
	}
	r := Round{
		id:     uuid.New(),
		bet:    bet,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		r = opt(r)
	}
	if r.shoe == nil {
		r.shoe = NewShuffledShoe(r.stream)
	}
	if err := r.deal(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Round) ID() string {
	return r.id.String()
}

func (r *Round) Bet() int {
	return r.bet
}

func (r *Round) Phase() Phase {
	return r.phase
}

// Outcome returns the result once the round is terminal.
func (r *Round) Outcome() (Outcome, bool) {
	return r.outcome, r.phase.Terminal()
}

// Steps returns every phase the round has entered, in order.
func (r *Round) Steps() []Phase {
	return slices.Clone(r.steps)
}

func (r *Round) PlayerHand() Hand {
	return NewHand(r.player.cards...)
}

func (r *Round) DealerHand() Hand {
	return NewHand(r.dealer.cards...)
}

// HoleHidden reports whether the dealer's second card must stay face down.
func (r *Round) HoleHidden() bool {
	return r.phase == PhasePlayerTurn
}

// deal gives two cards each, alternating and player first. Only a player
// natural is checked here; the dealer's hole card is not peeked.
func (r *Round) deal() error {
	r.enter(PhaseDealt)
	for range 2 {
		if err := r.draw(&r.player); err != nil {
			return err
		}
		if err := r.draw(&r.dealer); err != nil {
			return err
		}
	}
	if r.player.IsBlackjack() {
		if r.dealer.IsBlackjack() {
			r.finish(PhaseEarlySettled, PlayerBlackjackPush)
		} else {
			r.finish(PhaseEarlySettled, PlayerBlackjackWin)
		}
		return nil
	}
	r.enter(PhasePlayerTurn)
	return nil
}

// Advance applies one player decision and returns the new phase and, when the
// round is over, its outcome.
func (r *Round) Advance(d Decision) (Phase, Outcome, error) {
	if r.phase != PhasePlayerTurn {
		return r.phase, r.outcome, fmt.Errorf("%w: round is %s", ErrNotPlayerTurn, r.phase)
	}
	switch d {
	case Hit:
		if err := r.draw(&r.player); err != nil {
			return r.phase, r.outcome, err
		}
		if r.player.IsBust() {
			r.finish(PhaseSettled, PlayerBust)
		}
	case Stand:
		if err := r.playDealer(); err != nil {
			return r.phase, r.outcome, err
		}
	default:
		return r.phase, r.outcome, fmt.Errorf("%w: %q", ErrInvalidDecision, d)
	}
	return r.phase, r.outcome, nil
}

// Play asks p for decisions until the round is terminal.
func (r *Round) Play(p Player) (Outcome, error) {
	for r.phase == PhasePlayerTurn {
		d, err := p.Decide(r.View())
		if err != nil {
			return OutcomeNone, fmt.Errorf("player decision: %w", err)
		}
		if _, _, err := r.Advance(d); err != nil {
			return OutcomeNone, err
		}
	}
	return r.outcome, nil
}

// playDealer reveals the hole card, then draws while the dealer is below 17.
func (r *Round) playDealer() error {
	r.enter(PhaseDealerReveal)
	if r.dealer.IsBlackjack() {
		r.finish(PhaseSettled, DealerBlackjack)
		return nil
	}
	r.enter(PhaseDealerTurn)
	for DealerShouldHit(r.dealer) {
		if err := r.draw(&r.dealer); err != nil {
			return err
		}
	}
	r.finish(PhaseSettled, compare(r.player.Value(), r.dealer.Value()))
	return nil
}

// compare settles a standing player against a finished dealer hand.
func compare(player, dealer int) Outcome {
	switch {
	case dealer > BlackjackValue:
		return PlayerWin
	case player > dealer:
		return PlayerWin
	case player < dealer:
		return PlayerLose
	default:
		return Push
	}
}

// Settle applies the round's single bankroll effect. It can be called once,
// after the round is terminal.
func (r *Round) Settle(b *Bankroll) (Settlement, error) {
	if !r.phase.Terminal() {
		return Settlement{}, fmt.Errorf("%w: round is %s", ErrRoundInProgress, r.phase)
	}
	if r.settled {
		return Settlement{}, ErrAlreadySettled
	}
	s := NewSettlement(r.ID(), r.outcome, r.bet)
	if err := b.Apply(s); err != nil {
		return Settlement{}, fmt.Errorf("settle round %s: %w", r.ID(), err)
	}
	r.settled = true
	return s, nil
}

func (r *Round) draw(h *Hand) error {
	c, err := r.shoe.Draw()
	if err != nil {
		return fmt.Errorf("round %s in %s: %w", r.ID(), r.phase, err)
	}
	h.Add(c)
	return nil
}

func (r *Round) enter(p Phase) {
	r.logger.Debug("round phase", "round", r.ID(), "from", string(r.phase), "to", string(p))
	r.phase = p
	r.steps = append(r.steps, p)
}

func (r *Round) finish(p Phase, o Outcome) {
	r.outcome = o
	r.enter(p)
	r.logger.Debug("round finished", "round", r.ID(), "outcome", string(o),
		"player", r.player.Value(), "dealer", r.dealer.Value())
}

// View is the read-only picture of a round handed to renderers and players.
// While the hole card is hidden the dealer fields only describe the up card.
type View struct {
	RoundID     string
	Phase       Phase
	Bet         int
	PlayerCards []Card
	PlayerValue int
	PlayerSoft  bool
	DealerCards []Card
	DealerValue int
	HoleHidden  bool
	DealerDraws int
	Outcome     Outcome
	Steps       []Phase
}

func (r *Round) View() View {
	v := View{
		RoundID:     r.ID(),
		Phase:       r.phase,
		Bet:         r.bet,
		PlayerCards: r.player.Cards(),
		PlayerValue: r.player.Value(),
		PlayerSoft:  r.player.IsSoft(),
		HoleHidden:  r.HoleHidden(),
		DealerDraws: max(r.dealer.Len()-2, 0),
		Outcome:     r.outcome,
		Steps:       r.Steps(),
	}
	if v.HoleHidden {
		up := NewHand(r.dealer.cards[0])
		v.DealerCards = up.Cards()
		v.DealerValue = up.Value()
	} else {
		v.DealerCards = r.dealer.Cards()
		v.DealerValue = r.dealer.Value()
	}
	return v
}

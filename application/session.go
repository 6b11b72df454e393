// Package application runs a blackjack session: it takes bets, plays rounds
// against the dealer, settles them against the bankroll and journals them.
package application

import (
	"context"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/ledger"
)

// ErrInternal marks failures the player cannot recover from, such as a shoe
// running out mid-round.
var ErrInternal = errors.New("internal error")

// Prompter asks the player for input.
type Prompter interface {
	Bet(ctx context.Context, balance int) (int, error)
	Decide(ctx context.Context, v blackjack.View) (blackjack.Decision, error)
	Continue(ctx context.Context, balance int) (bool, error)
}

// Renderer shows the table to the player.
type Renderer interface {
	InvalidBet(requested, balance int)
	Round(v blackjack.View)
	Settled(v blackjack.View, s blackjack.Settlement, balance int)
}

// ShoeSource supplies the shoe of each new round.
type ShoeSource func() *blackjack.Shoe

type Session struct {
	bankroll  *blackjack.Bankroll
	journal   *ledger.Journal
	prompter  Prompter
	renderer  Renderer
	logger    *slog.Logger
	stream    cipher.Stream
	shoes     ShoeSource
	maxRounds int
	rounds    int
}

type SessionOption func(Session) Session

// WithStream shuffles every round's shoe from stream. A seeded stream makes
// the whole session replayable.
func WithStream(stream cipher.Stream) SessionOption {
	return func(s Session) Session {
		s.stream = stream
		return s
	}
}

// WithShoeSource deals every round from a shoe returned by source.
func WithShoeSource(source ShoeSource) SessionOption {
	return func(s Session) Session {
		s.shoes = source
		return s
	}
}

func WithLogger(logger *slog.Logger) SessionOption {
	return func(s Session) Session {
		if logger != nil {
			s.logger = logger
		}
		return s
	}
}

// WithMaxRounds stops Run after n rounds. Zero means no limit.
func WithMaxRounds(n int) SessionOption {
	return func(s Session) Session {
		s.maxRounds = max(n, 0)
		return s
	}
}

// NewSession seats a player holding bankroll at the table.
func NewSession(bankroll *blackjack.Bankroll, prompter Prompter, renderer Renderer, opts ...SessionOption) *Session {
	s := Session{
		bankroll: bankroll,
		journal:  ledger.NewJournal(bankroll.Balance()),
		prompter: prompter,
		renderer: renderer,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		s = opt(s)
	}
	return &s
}

func (s *Session) Bankroll() *blackjack.Bankroll {
	return s.bankroll
}

func (s *Session) Journal() *ledger.Journal {
	return s.journal
}

// Rounds returns the number of rounds settled so far.
func (s *Session) Rounds() int {
	return s.rounds
}

// Stats summarises the rounds journaled so far.
func (s *Session) Stats() Stats {
	genesis, _ := s.journal.GetByIndex(0)
	return NewStats(genesis.Entry.Balance, s.journal.Entries())
}

// PlayRound takes a bet, re-prompting until it is valid, plays the round to
// the end and settles it.
func (s *Session) PlayRound(ctx context.Context) (blackjack.Settlement, error) {
	bet, err := s.takeBet(ctx)
	if err != nil {
		return blackjack.Settlement{}, err
	}

	r, err := blackjack.NewRound(bet, s.bankroll, s.roundOptions()...)
	if err != nil {
		return blackjack.Settlement{}, s.fail(err)
	}
	s.logger.Info("round started", "round", r.ID(), "bet", bet, "balance", s.bankroll.Balance())

	player := blackjack.PlayerFunc(func(v blackjack.View) (blackjack.Decision, error) {
		s.renderer.Round(v)
		return s.prompter.Decide(ctx, v)
	})
	if _, err := r.Play(player); err != nil {
		if errors.Is(err, blackjack.ErrExhaustedShoe) {
			return blackjack.Settlement{}, s.fail(err)
		}
		return blackjack.Settlement{}, err
	}

	settlement, err := r.Settle(s.bankroll)
	if err != nil {
		return blackjack.Settlement{}, s.fail(err)
	}
	if _, err := s.journal.Record(r, settlement, s.bankroll.Balance()); err != nil {
		return settlement, s.fail(err)
	}
	s.rounds++
	s.logger.Info("round settled", "round", r.ID(), "outcome", string(settlement.Outcome),
		"delta", settlement.Delta(), "balance", s.bankroll.Balance())
	s.renderer.Settled(r.View(), settlement, s.bankroll.Balance())
	return settlement, nil
}

// Run plays rounds until the player leaves, the bankroll is empty, the round
// limit is reached or ctx is cancelled.
func (s *Session) Run(ctx context.Context) (Stats, error) {
	for {
		if s.bankroll.Broke() {
			s.logger.Info("bankroll empty", "rounds", s.rounds)
			return s.Stats(), nil
		}
		if s.maxRounds > 0 && s.rounds >= s.maxRounds {
			s.logger.Info("round limit reached", "rounds", s.rounds)
			return s.Stats(), nil
		}
		if err := ctx.Err(); err != nil {
			return s.Stats(), err
		}
		if _, err := s.PlayRound(ctx); err != nil {
			return s.Stats(), err
		}
		if s.bankroll.Broke() {
			continue
		}
		if s.maxRounds > 0 && s.rounds >= s.maxRounds {
			continue
		}
		again, err := s.prompter.Continue(ctx, s.bankroll.Balance())
		if err != nil {
			return s.Stats(), err
		}
		if !again {
			return s.Stats(), nil
		}
	}
}

func (s *Session) takeBet(ctx context.Context) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		requested, err := s.prompter.Bet(ctx, s.bankroll.Balance())
		if err != nil {
			return 0, fmt.Errorf("read bet: %w", err)
		}
		bet, err := s.bankroll.PlaceBet(requested)
		if errors.Is(err, blackjack.ErrInvalidBet) {
			s.logger.Debug("bet rejected", "requested", requested, "balance", s.bankroll.Balance())
			s.renderer.InvalidBet(requested, s.bankroll.Balance())
			continue
		}
		if err != nil {
			return 0, err
		}
		return bet, nil
	}
}

func (s *Session) roundOptions() []blackjack.RoundOption {
	opts := []blackjack.RoundOption{blackjack.WithLogger(s.logger)}
	if s.shoes != nil {
		opts = append(opts, blackjack.WithShoe(s.shoes()))
	} else if s.stream != nil {
		opts = append(opts, blackjack.WithStream(s.stream))
	}
	return opts
}

func (s *Session) fail(err error) error {
	s.logger.Error("round aborted", "error", err)
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

package blackjack

import "fmt"

// Bankroll tracks the player's chips across rounds. The balance is never
// negative.
type Bankroll struct {
	balance int
}

// NewBankroll returns a bankroll holding chips. Negative amounts start at zero.
func NewBankroll(chips int) *Bankroll {
	return &Bankroll{balance: max(chips, 0)}
}

func (b *Bankroll) Balance() int {
	return b.balance
}

// Broke reports whether no further bet is possible.
func (b *Bankroll) Broke() bool {
	return b.balance <= 0
}

// CanBet reports whether 0 < amount <= balance.
func (b *Bankroll) CanBet(amount int) bool {
	return amount > 0 && amount <= b.balance
}

// PlaceBet validates a requested bet and returns it. The balance is not
// touched until the round settles.
func (b *Bankroll) PlaceBet(requested int) (int, error) {
	if !b.CanBet(requested) {
		return 0, fmt.Errorf("%w: %d with balance %d", ErrInvalidBet, requested, b.balance)
	}
	return requested, nil
}

func (b *Bankroll) Win(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: win %d", ErrInvalidAmount, amount)
	}
	b.balance += amount
	return nil
}

// Lose removes amount from the balance. It refuses to go below zero, which a
// bet bounded by the pre-bet balance can never trigger.
func (b *Bankroll) Lose(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: lose %d", ErrInvalidAmount, amount)
	}
	if amount > b.balance {
		return fmt.Errorf("%w: lose %d with balance %d", ErrInsufficientFunds, amount, b.balance)
	}
	b.balance -= amount
	return nil
}

// Apply performs the single effect of a settlement.
func (b *Bankroll) Apply(s Settlement) error {
	switch s.Effect {
	case EffectWin:
		return b.Win(s.Amount)
	case EffectLose:
		return b.Lose(s.Amount)
	default:
		return nil
	}
}

package blackjack

import "errors"

var (
	// ErrInvalidBet is returned for a bet that is not positive or exceeds the
	// balance. Callers recover by asking for another amount.
	ErrInvalidBet = errors.New("invalid bet")
	// ErrExhaustedShoe signals a draw from an empty shoe. A round against a
	// fresh shoe cannot reach it, so it indicates an internal bug.
	ErrExhaustedShoe = errors.New("shoe exhausted")

	ErrInvalidCard       = errors.New("invalid card")
	ErrInvalidDecision   = errors.New("invalid decision")
	ErrNotPlayerTurn     = errors.New("not player's turn")
	ErrRoundInProgress   = errors.New("round still in progress")
	ErrAlreadySettled    = errors.New("round already settled")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must not be negative")
)

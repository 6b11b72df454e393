// Package blackjack implements the rules engine for single-player Blackjack
// against a dealer: cards, the shoe, hand valuation, the round state machine
// and the bankroll contract.
//
// # Core Types
//
// Card: An immutable playing card with suit and rank.
//
// Shoe: The 52 cards available for dealing in one round.
//
// Hand: The cards held by the player or the dealer, valued with the soft Ace
// rule.
//
// Round: One bet-to-settlement cycle. It owns its Shoe and both Hands.
//
// Bankroll: The chip balance that survives across rounds.
//
// # Round Flow
//
// A round moves through Dealt → PlayerTurn → DealerReveal → DealerTurn →
// Settled. A player natural ends the round at EarlySettled straight after the
// deal. The dealer's hole card is hidden only while the player is acting.
//
// The engine never reads input: decisions are supplied through Advance or by a
// Player passed to Play, and the session applies the resulting Settlement to
// its Bankroll.
package blackjack

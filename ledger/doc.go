// Package ledger implements an append-only journal of settled blackjack
// rounds.
//
// # Core Components
//
// Journal: An in-memory log of settlements with SHA-256 hash chaining for
// tamper detection.
//
// Block: A single settled round, linked to the previous block by its hash.
//
// # Properties
//
// The journal provides:
//   - Continuity: every block's balance is the previous balance plus its delta
//   - Verifiability: the whole chain can be re-hashed and checked at any time
//   - Auditability: the cards, bet and outcome of every round are kept
//
// # Usage
//
// Create a journal with the opening balance, then record each round after
// it has been settled against the bankroll. The genesis block carries the
// opening balance and no round.
package ledger

// Package deck provides the random streams used to shuffle a shoe of cards.
//
// Streams come from the Ed25519 kyber suite: RandomStream is seeded from the
// operating system, SeededStream is a deterministic XOF so that a whole
// session can be replayed from a single seed.
package deck

import (
	"crypto/cipher"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// RandomStream returns a stream seeded with fresh system randomness.
func RandomStream() cipher.Stream {
	return suite.RandomStream()
}

// SeededStream returns a deterministic stream. Two streams built from the same
// seed yield the same sequence of shuffles.
func SeededStream(seed []byte) cipher.Stream {
	return suite.XOF(seed)
}

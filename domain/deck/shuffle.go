package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle performs a Fisher-Yates shuffle of n elements through swap.
// Indices are drawn by rejection sampling from stream, so every permutation is
// equally likely given an unbiased stream. A nil stream falls back to
// RandomStream.
func Shuffle(n int, swap func(i, j int), stream cipher.Stream) {
	if stream == nil {
		stream = RandomStream()
	}
	for i := n - 1; i > 0; i-- {
		j := index(i+1, stream)
		swap(i, j)
	}
}

// index returns a uniform integer in [0, bound). random.Int never yields 0,
// so it samples [1, bound] and shifts down.
func index(bound int, stream cipher.Stream) int {
	return int(random.Int(big.NewInt(int64(bound+1)), stream).Int64()) - 1
}

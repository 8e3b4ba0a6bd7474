package credential

import (
	cryptorand "crypto/rand"
	mathrand "math/rand/v2"
)

// Source yields uniformly distributed integers in [0, n).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a ChaCha8 generator seeded from crypto/rand.
func NewSource() Source {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		panic(err)
	}
	return mathrand.New(mathrand.NewChaCha8(seed))
}

// NewSeededSource returns a deterministic source. Two sources built from the
// same seed produce the same sequence.
func NewSeededSource(seed uint64) Source {
	return mathrand.New(mathrand.NewPCG(seed, seed))
}

package oracle

import "github.com/spaolacci/murmur3"

// KeyStream derives a deterministic, reproducible sequence of
// pseudo-random keys in [0, population) from a human-readable seed,
// by hashing seed||index with murmur3 and folding the 64-bit digest
// into the population range. Used by benchmarks and fuzz corpora that
// want the same key sequence across runs tied to a readable seed,
// rather than a bare math/rand stream.
type KeyStream struct {
	seed       string
	population int32
}

// NewKeyStream constructs a stream over [0, population).
func NewKeyStream(seed string, population int32) *KeyStream {
	return &KeyStream{seed: seed, population: population}
}

// At returns the index-th key in the stream.
func (s *KeyStream) At(index int) int32 {
	h := murmur3.Sum64(seedIndex(s.seed, index))
	return int32(h % uint64(s.population))
}

func seedIndex(seed string, index int) []byte {
	buf := make([]byte, 0, len(seed)+8)
	buf = append(buf, seed...)
	for i := 0; i < 8; i++ {
		buf = append(buf, byte(index>>(8*i)))
	}
	return buf
}

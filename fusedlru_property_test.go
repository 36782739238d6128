package fusedlru

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fusedlru/internal/oracle"
)

// TestProperties_RandomOpsAgainstOracle applies a long random sequence
// of put/get/remove to FusedLRU and to a reference implementation side
// by side, and requires every observable result to agree at every step.
func TestProperties_RandomOpsAgainstOracle(t *testing.T) {
	for _, cacheSize := range []int32{3, 1000, 10000, 100000} {
		t.Run(fmt.Sprintf("cacheSize=%d", cacheSize), func(t *testing.T) {
			runPropertyCheck(t, cacheSize, 1234)
		})
	}
}

func runPropertyCheck(t *testing.T, cacheSize int32, seed int64) {
	sut := newTestCache(t, cacheSize)
	want := oracle.NewListCache(cacheSize)
	recency := oracle.NewRecencyIndex(cacheSize)

	rng := rand.New(rand.NewSource(seed))
	population := cacheSize * 2
	iterations := int(cacheSize) * 3

	keySeq := make([]int32, 0, iterations)

	for i := 0; i < iterations; i++ {
		key := int32(rng.Intn(int(population)))
		value := int32(rng.Intn(int(population)))
		keySeq = append(keySeq, key)

		wantPrev := want.Put(key, value)
		gotPrev := sut.Put(key, value)
		require.Equalf(t, wantPrev, gotPrev, "put(%d, %d) previous value mismatch", key, value)

		recency.Touch(key)
		require.Equal(t, want.Size(), sut.Size(), "size mismatch after put")
	}

	for key := int32(0); key < population; key++ {
		wantValue := want.Get(key)
		gotValue := sut.Get(key)
		require.Equalf(t, wantValue, gotValue, "get(%d) mismatch", key)
		if wantValue != null {
			recency.Touch(key)
		}
	}

	assertListMatchesRecencyIndex(t, sut, recency, want)

	for i := 0; i < iterations; i++ {
		key := keySeq[rng.Intn(len(keySeq))]
		wantRemoved := want.Remove(key)
		gotRemoved := sut.Remove(key)
		require.Equalf(t, wantRemoved, gotRemoved, "remove(%d) mismatch", key)
		if wantRemoved != null {
			recency.Remove(key)
		}
	}

	require.Equal(t, want.Size(), sut.Size())
}

// assertListMatchesRecencyIndex cross-checks FusedLRU's linked-list
// recency order against two independently derived encodings of the
// same order: oracle.ListCache's insertion-ordered key list, and
// oracle.RecencyIndex's btree-backed touch sequence.
func assertListMatchesRecencyIndex(t *testing.T, sut *FusedLRU, recency *oracle.RecencyIndex, want *oracle.ListCache) {
	t.Helper()

	sutOrder := make([]int32, 0, sut.size)
	for pos := sut.head; pos != null; pos = sut.right(pos) {
		sutOrder = append(sutOrder, sut.key(pos))
	}

	assert.Equal(t, want.Keys(), sutOrder)
	assert.Equal(t, recency.OrderedKeys(), sutOrder)
}

func TestProperties_ClearRestoresInvariantsAcrossRuns(t *testing.T) {
	c := newTestCache(t, 50)
	rng := rand.New(rand.NewSource(99))

	for round := 0; round < 3; round++ {
		for i := 0; i < 200; i++ {
			c.Put(int32(rng.Intn(100)), int32(rng.Intn(1000)))
		}
		assertRecencyListConsistent(t, c)
		c.Clear()
		assert.Equal(t, int32(0), c.Size())
	}
}

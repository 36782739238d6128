// Command fusedlru-bench drives FusedLRU and every internal baseline
// through the same randomized put/get/remove sequence, reports any
// divergence between them, then prints a rough throughput number.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"fusedlru"
	"fusedlru/internal/oracle"
	"fusedlru/internal/refimpl"
)

func main() {
	cacheSize := flag.Int("cache-size", 10000, "logical cache size")
	loadFactor := flag.Float64("load-factor", 0.66, "hash table load factor")
	iterations := flag.Int("iterations", 0, "operations per phase, defaults to 3x cache size")
	seed := flag.Int64("seed", 1234, "random seed")
	flag.Parse()

	if *iterations <= 0 {
		*iterations = *cacheSize * 3
	}

	if err := runDifferential(int32(*cacheSize), float32(*loadFactor), *iterations, *seed); err != nil {
		fmt.Fprintln(os.Stderr, "differential check FAILED:", err)
		os.Exit(1)
	}
	fmt.Println("differential check passed")

	runThroughput(int32(*cacheSize), float32(*loadFactor), *iterations, *seed)
}

type namedCache struct {
	name  string
	cache fusedlru.Cache
}

// runDifferential mirrors CacheRandomInputTest.testCaches: apply the
// same random put sequence to FusedLRU and every baseline, compare
// every get against the oracle, then apply the same random remove
// sequence and compare again.
func runDifferential(cacheSize int32, loadFactor float32, iterations int, seed int64) error {
	sut, err := fusedlru.New(cacheSize, fusedlru.WithLoadFactor(loadFactor))
	if err != nil {
		return err
	}

	oracleCache := oracle.NewListCache(cacheSize)
	baselines := []namedCache{
		{"node-lru", refimpl.NewNodeLRU(cacheSize)},
		{"tree-lru", refimpl.NewTreeLRU(cacheSize)},
	}

	rng := rand.New(rand.NewSource(seed))
	population := cacheSize * 2

	for i := 0; i < iterations; i++ {
		key := int32(rng.Intn(int(population)))
		value := int32(rng.Intn(int(population)))

		want := oracleCache.Put(key, value)
		if got := sut.Put(key, value); got != want {
			return fmt.Errorf("put(%d, %d): FusedLRU returned %d, oracle returned %d", key, value, got, want)
		}
		for _, b := range baselines {
			if got := b.cache.Put(key, value); got != want {
				return fmt.Errorf("put(%d, %d): %s returned %d, oracle returned %d", key, value, b.name, got, want)
			}
		}
	}

	for key := int32(0); key < population; key++ {
		want := oracleCache.Get(key)
		if got := sut.Get(key); got != want {
			return fmt.Errorf("get(%d): FusedLRU returned %d, oracle returned %d", key, got, want)
		}
		for _, b := range baselines {
			if got := b.cache.Get(key); got != want {
				return fmt.Errorf("get(%d): %s returned %d, oracle returned %d", key, b.name, got, want)
			}
		}
	}

	if sut.Size() != oracleCache.Size() {
		return fmt.Errorf("size mismatch: FusedLRU=%d oracle=%d", sut.Size(), oracleCache.Size())
	}

	for i := 0; i < iterations; i++ {
		key := int32(rng.Intn(int(population)))

		want := oracleCache.Remove(key)
		if got := sut.Remove(key); got != want {
			return fmt.Errorf("remove(%d): FusedLRU returned %d, oracle returned %d", key, got, want)
		}
		for _, b := range baselines {
			if got := b.cache.Remove(key); got != want {
				return fmt.Errorf("remove(%d): %s returned %d, oracle returned %d", key, b.name, got, want)
			}
		}
	}

	return nil
}

// runThroughput is the Go counterpart to LRUCacheBenchmark's
// testPutOnMapIntBoolLRUCache / testGetOnMapIntBoolLRUCache: a rough,
// human-readable ns/op number, outside go test -bench's reporting.
func runThroughput(cacheSize int32, loadFactor float32, iterations int, seed int64) {
	sut, err := fusedlru.New(cacheSize, fusedlru.WithLoadFactor(loadFactor))
	if err != nil {
		panic(err)
	}

	rng := rand.New(rand.NewSource(seed))
	population := cacheSize * 2
	keys := make([]int32, iterations)
	values := make([]int32, iterations)
	for i := range keys {
		keys[i] = int32(rng.Intn(int(population)))
		values[i] = int32(rng.Intn(int(population)))
	}

	start := time.Now()
	for i := range keys {
		sut.Put(keys[i], values[i])
	}
	putElapsed := time.Since(start)

	start = time.Now()
	for i := range keys {
		sut.Get(keys[i])
	}
	getElapsed := time.Since(start)

	fmt.Printf("put: %d ops in %s (%.0f ns/op)\n",
		iterations, putElapsed, float64(putElapsed.Nanoseconds())/float64(iterations))
	fmt.Printf("get: %d ops in %s (%.0f ns/op)\n",
		iterations, getElapsed, float64(getElapsed.Nanoseconds())/float64(iterations))
}

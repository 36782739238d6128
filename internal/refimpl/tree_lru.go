package refimpl

import (
	"fusedlru"

	"github.com/google/btree"
)

type treeEntry struct {
	key int32
	seq int64
}

func treeEntryLess(a, b treeEntry) bool {
	return a.seq < b.seq
}

// TreeLRU is a tree-map-backed cache baseline: recency order is an
// ordered tree keyed by a monotonic touch sequence rather than a
// linked list, so eviction removes the tree's minimum entry.
type TreeLRU struct {
	capacity int32
	size     int32
	nextSeq  int64
	values   map[int32]int32
	seqs     map[int32]int64
	order    *btree.BTreeG[treeEntry]
}

var _ fusedlru.Cache = (*TreeLRU)(nil)

// NewTreeLRU constructs a baseline holding up to capacity entries.
func NewTreeLRU(capacity int32) *TreeLRU {
	return &TreeLRU{
		capacity: capacity,
		values:   make(map[int32]int32),
		seqs:     make(map[int32]int64),
		order:    btree.NewG[treeEntry](32, treeEntryLess),
	}
}

func (c *TreeLRU) touch(key int32) {
	if seq, ok := c.seqs[key]; ok {
		c.order.Delete(treeEntry{key: key, seq: seq})
	}
	seq := c.nextSeq
	c.nextSeq++
	c.seqs[key] = seq
	c.order.ReplaceOrInsert(treeEntry{key: key, seq: seq})
}

// Put inserts or updates key, evicting the oldest-touched entry if
// the baseline is already at capacity.
func (c *TreeLRU) Put(key, value int32) int32 {
	prev, existed := c.values[key]
	c.values[key] = value
	c.touch(key)

	if existed {
		return prev
	}

	c.size++
	if c.size > c.capacity {
		c.evictOldest()
	}
	return sentinel
}

// Get returns key's value, refreshing its recency on a hit.
func (c *TreeLRU) Get(key int32) int32 {
	value, ok := c.values[key]
	if !ok {
		return sentinel
	}
	c.touch(key)
	return value
}

// Remove deletes key, returning its value, or the sentinel if absent.
func (c *TreeLRU) Remove(key int32) int32 {
	value, ok := c.values[key]
	if !ok {
		return sentinel
	}
	seq := c.seqs[key]
	c.order.Delete(treeEntry{key: key, seq: seq})
	delete(c.values, key)
	delete(c.seqs, key)
	c.size--
	return value
}

// Clear empties the baseline.
func (c *TreeLRU) Clear() {
	c.values = make(map[int32]int32)
	c.seqs = make(map[int32]int64)
	c.order = btree.NewG[treeEntry](32, treeEntryLess)
	c.size = 0
	c.nextSeq = 0
}

// Size returns the number of entries held.
func (c *TreeLRU) Size() int32 {
	return c.size
}

func (c *TreeLRU) evictOldest() {
	oldest, ok := c.order.Min()
	if !ok {
		return
	}
	c.order.Delete(oldest)
	delete(c.values, oldest.key)
	delete(c.seqs, oldest.key)
	c.size--
}

package oracle

import "github.com/google/btree"

type seqEntry struct {
	key int32
	seq int64
}

func seqLess(a, b seqEntry) bool {
	return a.seq < b.seq
}

// RecencyIndex is a second, independently-derived LRU order tracker:
// it implements the same "evict the globally oldest-touched key"
// policy as FusedLRU and ListCache, but keeps order in a
// github.com/google/btree.BTreeG keyed by a monotonic touch sequence
// instead of list pointers or a linked list. Property tests apply the
// identical operation sequence to FusedLRU, ListCache and a
// RecencyIndex side by side and assert all three agree on recency
// order, so a bug shared between the SUT and a single reference
// encoding is less likely to go unnoticed.
type RecencyIndex struct {
	capacity int32
	tree     *btree.BTreeG[seqEntry]
	byKey    map[int32]seqEntry
	nextSeq  int64
}

// NewRecencyIndex constructs an index that evicts once more than
// capacity distinct keys have been touched.
func NewRecencyIndex(capacity int32) *RecencyIndex {
	return &RecencyIndex{
		capacity: capacity,
		tree:     btree.NewG[seqEntry](32, seqLess),
		byKey:    make(map[int32]seqEntry),
	}
}

// Touch records key as just-accessed, ordering it after every other
// tracked key. If key is new and the index is already at capacity,
// the oldest-touched key is evicted first.
func (r *RecencyIndex) Touch(key int32) {
	if prev, ok := r.byKey[key]; ok {
		r.tree.Delete(prev)
	} else if int32(len(r.byKey)) >= r.capacity {
		if oldest, ok := r.tree.Min(); ok {
			r.tree.Delete(oldest)
			delete(r.byKey, oldest.key)
		}
	}

	e := seqEntry{key: key, seq: r.nextSeq}
	r.nextSeq++
	r.byKey[key] = e
	r.tree.ReplaceOrInsert(e)
}

// Remove drops key from the index.
func (r *RecencyIndex) Remove(key int32) {
	if prev, ok := r.byKey[key]; ok {
		r.tree.Delete(prev)
		delete(r.byKey, key)
	}
}

// Clear empties the index.
func (r *RecencyIndex) Clear() {
	r.tree = btree.NewG[seqEntry](32, seqLess)
	r.byKey = make(map[int32]seqEntry)
	r.nextSeq = 0
}

// Len returns the number of tracked keys.
func (r *RecencyIndex) Len() int {
	return r.tree.Len()
}

// OrderedKeys returns tracked keys from least to most recently touched.
func (r *RecencyIndex) OrderedKeys() []int32 {
	keys := make([]int32, 0, r.tree.Len())
	r.tree.Ascend(func(e seqEntry) bool {
		keys = append(keys, e.key)
		return true
	})
	return keys
}

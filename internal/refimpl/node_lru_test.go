package refimpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewNodeLRU(3)

	c.Put(1, 10)
	c.Put(2, 20)
	c.Put(3, 30)
	c.Put(4, 40)

	assert.Equal(t, int32(3), c.Size())
	assert.Equal(t, sentinel, c.Get(1))
	assert.Equal(t, int32(40), c.Get(4))
}

func TestNodeLRU_OverwritePreservesSize(t *testing.T) {
	c := NewNodeLRU(3)

	assert.Equal(t, sentinel, c.Put(1, 1))
	assert.Equal(t, int32(1), c.Put(1, 2))
	assert.Equal(t, int32(1), c.Size())
	assert.Equal(t, int32(2), c.Get(1))
}

func TestNodeLRU_ClearResetsState(t *testing.T) {
	c := NewNodeLRU(2)
	c.Put(1, 1)
	c.Put(2, 2)
	c.Clear()

	assert.Equal(t, int32(0), c.Size())
	assert.Equal(t, sentinel, c.Get(1))
}

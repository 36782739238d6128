package refimpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewTreeLRU(3)

	c.Put(1, 10)
	c.Put(2, 20)
	c.Put(3, 30)
	c.Put(4, 40)

	assert.Equal(t, int32(3), c.Size())
	assert.Equal(t, sentinel, c.Get(1))
	assert.Equal(t, int32(40), c.Get(4))
}

func TestTreeLRU_TouchRescuesFromEviction(t *testing.T) {
	c := NewTreeLRU(3)

	c.Put(1, 10)
	c.Put(2, 20)
	c.Put(3, 30)
	c.Get(1)
	c.Put(4, 40)

	assert.Equal(t, sentinel, c.Get(2))
	assert.Equal(t, int32(10), c.Get(1))
}

func TestTreeLRU_RemoveThenReinsertReusesCapacity(t *testing.T) {
	c := NewTreeLRU(3)

	c.Put(1, 10)
	c.Put(2, 20)
	c.Put(3, 30)
	assert.Equal(t, int32(20), c.Remove(2))
	c.Put(4, 40)

	assert.Equal(t, int32(3), c.Size())
	assert.Equal(t, int32(10), c.Get(1))
	assert.Equal(t, int32(40), c.Get(4))
	assert.Equal(t, sentinel, c.Get(2))
}

package mocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// consumer is the kind of caller the mock exists for: code that only
// needs fusedlru.Cache's narrow surface and should be testable
// without a real FusedLRU behind it.
func consumer(c Cache, key, value int32) int32 {
	c.Put(key, value)
	return c.Get(key)
}

func TestCacheMock_Consumer(t *testing.T) {
	mock := &CacheMock{
		PutFunc: func(key, value int32) int32 {
			return -1
		},
		GetFunc: func(key int32) int32 {
			return 42
		},
	}

	result := consumer(mock, 7, 42)
	assert.Equal(t, int32(42), result)

	putCalls := mock.PutCalls()
	assert.Len(t, putCalls, 1)
	assert.Equal(t, int32(7), putCalls[0].Key)
	assert.Equal(t, int32(42), putCalls[0].Value)

	getCalls := mock.GetCalls()
	assert.Len(t, getCalls, 1)
	assert.Equal(t, int32(7), getCalls[0].Key)
}

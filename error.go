package fusedlru

import "errors"

// ErrInvalidCacheSize ...
var ErrInvalidCacheSize = errors.New("fusedlru: cache size must be >= 2")

// ErrInvalidLoadFactor ...
var ErrInvalidLoadFactor = errors.New("fusedlru: load factor must be in (0, 1)")

// ErrCapacityOverflow ...
var ErrCapacityOverflow = errors.New("fusedlru: required capacity exceeds 2^28 slots")

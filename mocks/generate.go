package mocks

import "fusedlru"

// Cache ...
type Cache = fusedlru.Cache

//go:generate moq -rm -out fusedlru_mocks.go . Cache

// Package refimpl carries alternative LRU implementations: a per-entry
// heap-object variant and a tree-map-backed variant. Both exist purely
// so the differential driver (cmd/fusedlru-bench) can run them
// alongside FusedLRU as extra baselines; neither is imported by the
// fusedlru package.
package refimpl

const sentinel = int32(-1)

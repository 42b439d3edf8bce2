// Package sdbm implements the multiplicative string hash with the
// 65599 multiplier, as used by the sdbm database library.
package sdbm

// Multiplier is the constant each partial sum is scaled by
// before the next byte is added.
const Multiplier = 65599

// Sum64 returns the hash of key. The sum is accumulated in a uint64
// and is allowed to wrap on overflow.
func Sum64(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = h*Multiplier + uint64(key[i])
	}
	return h
}

// Index reduces the hash of key into the range [0, n)
func Index(key string, n int) int {
	if n <= 0 {
		panic("sdbm: bucket count must be positive")
	}
	return int(Sum64(key) % uint64(n))
}

package chash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
)

// HashFunc maps a key to a 32-bit hash. The table reduces it modulo its
// capacity to pick a bucket.
type HashFunc func(key string) uint32

// hashPrime is the multiplier of the polynomial string hash (K&R 6.6).
const hashPrime = 31

// Poly31 computes hash = b + 31*hash over the key's bytes, starting from zero.
// Overflow wraps.
func Poly31(key string) uint32 {
	var hash uint32
	for i := 0; i < len(key); i++ {
		hash = uint32(key[i]) + hashPrime*hash
	}
	return hash
}

// Hash returns the bucket index of key in a table with the given capacity
// using Poly31. capacity must be positive.
func Hash(key string, capacity uint32) uint32 {
	return Poly31(key) % capacity
}

const (
	offset32 = 2166136261
	prime32  = 16777619
)

// FNV1a computes a 32-bit FNV-1a hash of the key.
func FNV1a(key string) uint32 {
	hash := uint32(offset32)
	for i := 0; i < len(key); i++ {
		hash ^= uint32(key[i])
		hash *= prime32
	}
	return hash
}

// XXHash folds the 64-bit xxHash digest of the key into 32 bits.
func XXHash(key string) uint32 {
	return fold(xxhash.Sum64String(key))
}

// MapHash returns a hasher backed by the runtime's map hash. The seed is
// random per call, so bucket placement differs between hashers and processes
// but is stable for the lifetime of the returned function.
func MapHash() HashFunc {
	h := maphash.NewHasher[string]()
	return func(key string) uint32 {
		return fold(h.Hash(key))
	}
}

func fold(h uint64) uint32 {
	return uint32(h ^ h>>32)
}

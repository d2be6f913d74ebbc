package hashmap

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Hasher maps a key to a 64-bit value. Implementations operate on the
// canonical byte view of the key (see AppendKeyBytes).
type Hasher[K comparable] interface {
	Hash(key K) uint64
}

// SeededHasherFunc constructs a Hasher from two 64-bit seed words. Maps that
// re-seed on rehash (CuckooMap) require one; maps that keep a single hasher
// for their whole lifetime (ChainMap, ProbeMap) accept any Hasher.
type SeededHasherFunc[K comparable] func(seed0, seed1 uint64) Hasher[K]

// SipSeeded is the default SeededHasherFunc.
func SipSeeded[K comparable](seed0, seed1 uint64) Hasher[K] {
	return NewSeededSipHasher[K](seed0, seed1)
}

// Murmur3Hasher hashes keys with 64-bit Murmur3. It carries no seed material,
// so it cannot serve a CuckooMap.
type Murmur3Hasher[K comparable] struct {
	buf []byte
}

func NewMurmur3Hasher[K comparable]() *Murmur3Hasher[K] {
	return &Murmur3Hasher[K]{}
}

func (h *Murmur3Hasher[K]) Hash(key K) uint64 {
	h.buf = AppendKeyBytes(h.buf[:0], key)
	return murmur3.Sum64(h.buf)
}

// XXHasher hashes keys with xxHash64. Like Murmur3Hasher it is a fixed
// hasher.
type XXHasher[K comparable] struct {
	buf []byte
}

func NewXXHasher[K comparable]() *XXHasher[K] {
	return &XXHasher[K]{}
}

func (h *XXHasher[K]) Hash(key K) uint64 {
	h.buf = AppendKeyBytes(h.buf[:0], key)
	return xxhash.Sum64(h.buf)
}

package hashmap

import (
	"encoding/binary"
	"math/bits"
)

// SipHash initialization vector ("somepseudorandomlygeneratedbytes").
const (
	sipIV0 uint64 = 0x736f6d6570736575
	sipIV1 uint64 = 0x646f72616e646f6d
	sipIV2 uint64 = 0x6c7967656e657261
	sipIV3 uint64 = 0x7465646279746573
)

// Default key material for maps that never re-seed their hasher.
const (
	DefaultSeed0 uint64 = 0x0706050403020100
	DefaultSeed1 uint64 = 0x0f0e0d0c0b0a0908
)

// SipSum64 computes the 64-bit SipHash-1-3 digest of data under the 128-bit
// key (k0, k1): one compression round per 8-byte little-endian word and three
// finalization rounds. The final word carries the trailing 0-7 bytes with the
// total input length modulo 256 in its most significant byte.
//
// Identical (k0, k1, data) always produce identical digests. Distinct keys
// decorrelate digests for the same input, which is what lets the cuckoo map
// escape adversarial collision patterns by re-seeding.
func SipSum64(k0, k1 uint64, data []byte) uint64 {
	v0 := sipIV0 ^ k0
	v1 := sipIV1 ^ k1
	v2 := sipIV2 ^ k0
	v3 := sipIV3 ^ k1

	b := uint64(len(data)&0xff) << 56

	for len(data) >= 8 {
		m := binary.LittleEndian.Uint64(data)
		v3 ^= m
		v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
		v0 ^= m
		data = data[8:]
	}

	for i, c := range data {
		b |= uint64(c) << (8 * i)
	}
	v3 ^= b
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0 ^= b

	v2 ^= 0xff
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)

	return v0 ^ v1 ^ v2 ^ v3
}

func sipRound(v0, v1, v2, v3 uint64) (uint64, uint64, uint64, uint64) {
	v0 += v1
	v1 = bits.RotateLeft64(v1, 13)
	v1 ^= v0
	v0 = bits.RotateLeft64(v0, 32)

	v2 += v3
	v3 = bits.RotateLeft64(v3, 16)
	v3 ^= v2

	v0 += v3
	v3 = bits.RotateLeft64(v3, 21)
	v3 ^= v0

	v2 += v1
	v1 = bits.RotateLeft64(v1, 17)
	v1 ^= v2
	v2 = bits.RotateLeft64(v2, 32)

	return v0, v1, v2, v3
}

// SipHasher hashes keys with SipHash-1-3 under a fixed 128-bit seed.
//
// The hasher reuses an internal scratch buffer across calls, so a single
// instance must not be shared between goroutines.
type SipHasher[K comparable] struct {
	k0, k1 uint64
	buf    []byte
}

// NewSipHasher returns a SipHasher with the default seed words.
func NewSipHasher[K comparable]() *SipHasher[K] {
	return NewSeededSipHasher[K](DefaultSeed0, DefaultSeed1)
}

// NewSeededSipHasher returns a SipHasher keyed with the given seed words.
func NewSeededSipHasher[K comparable](seed0, seed1 uint64) *SipHasher[K] {
	return &SipHasher[K]{k0: seed0, k1: seed1}
}

func (h *SipHasher[K]) Hash(key K) uint64 {
	h.buf = AppendKeyBytes(h.buf[:0], key)
	return SipSum64(h.k0, h.k1, h.buf)
}

package bloom

import "github.com/zeebo/xxh3"

// hashData computes the 128-bit xxh3 hash of the given data and returns
// the two 64-bit base hashes used for double hashing: the high half is
// the starting position hash, the low half is the step hash.
func hashData(data []byte) (h1, h2 uint64) {
	h := xxh3.Hash128(data)
	return h.Hi, h.Lo | 1
}

// hashString computes the 128-bit xxh3 hash of the given string and
// returns the two 64-bit base hashes used for double hashing.
// This avoids the allocation of converting string to []byte.
func hashString(s string) (h1, h2 uint64) {
	h := xxh3.HashString128(s)
	return h.Hi, h.Lo | 1
}

// probe returns the i-th probe position in [0, m) for a base hash pair.
// The step hash is forced odd above so a zero step cannot collapse all
// k probes onto a single bit.
func probe(h1, h2 uint64, i uint32, m uint64) uint64 {
	return (h1 + uint64(i)*h2) % m
}

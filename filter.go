package bloom

import "github.com/bits-and-blooms/bitset"

// Filter is a non-thread-safe bloom filter backed by a flat bit array.
//
// The filter computes a single 128-bit xxh3 hash per key and derives k
// bit positions from it via double hashing, so each operation costs one
// hash plus O(k) bit accesses. The bit array length m and hash count k
// are fixed at construction; only the bit values change afterwards.
//
// Filter offers no synchronization. Wrap it in [SharedFilter] (or provide
// external locking) for concurrent access.
type Filter struct {
	bits *bitset.BitSet // m binary flags
	m    uint64         // Length of the bit array
	k    uint32         // Number of hash probes per key
}

// New creates a bloom filter sized for the expected number of items and
// desired false positive rate using [OptimalParams].
func New(expectedItems uint64, fpRate float64) *Filter {
	m, k := OptimalParams(expectedItems, fpRate)
	return NewWithParams(m, k)
}

// NewWithParams creates a bloom filter with an explicit bit count and
// hash count. Zero values are raised to 1.
func NewWithParams(m uint64, k uint32) *Filter {
	if m == 0 {
		m = 1
	}
	if k == 0 {
		k = 1
	}

	return &Filter{
		bits: bitset.New(uint(m)),
		m:    m,
		k:    k,
	}
}

// Add adds data to the bloom filter. Adding the same key again sets the
// same bits, so Add is idempotent. It never fails for any hashable input.
func (f *Filter) Add(data []byte) {
	h1, h2 := hashData(data)
	f.addHash(h1, h2)
}

// AddString adds a string to the bloom filter without allocating.
func (f *Filter) AddString(s string) {
	h1, h2 := hashString(s)
	f.addHash(h1, h2)
}

// addHash sets the k probe bits for a base hash pair.
func (f *Filter) addHash(h1, h2 uint64) {
	for i := uint32(0); i < f.k; i++ {
		f.bits.Set(uint(probe(h1, h2, i, f.m)))
	}
}

// Test checks if data might be in the bloom filter.
// Returns true if the data might be present (with false positive
// probability approaching the configured rate as the filter fills),
// or false if the data is definitely not present.
func (f *Filter) Test(data []byte) bool {
	h1, h2 := hashData(data)
	return f.testHash(h1, h2)
}

// TestString checks if a string might be in the bloom filter without allocating.
func (f *Filter) TestString(s string) bool {
	h1, h2 := hashString(s)
	return f.testHash(h1, h2)
}

// testHash reports whether all k probe bits are set for a base hash pair.
func (f *Filter) testHash(h1, h2 uint64) bool {
	for i := uint32(0); i < f.k; i++ {
		if !f.bits.Test(uint(probe(h1, h2, i, f.m))) {
			return false
		}
	}

	return true
}

// Clear zeroes every bit, restoring the empty filter. The bit array
// length and hash count are unchanged.
func (f *Filter) Clear() {
	f.bits.ClearAll()
}

// Bits returns the length m of the bit array.
func (f *Filter) Bits() uint64 {
	return f.m
}

// K returns the number of hash functions (probes per key).
func (f *Filter) K() uint32 {
	return f.k
}

// FillRatio returns the proportion of bits currently set.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// assuming n items have been added to the filter.
func (f *Filter) EstimatedFalsePositiveRate(n uint64) float64 {
	return EstimateFalsePositiveRate(f.m, f.k, n)
}

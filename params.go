package bloom

import "math"

const (
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014
)

// OptimalParams calculates bloom filter parameters for the expected number
// of items and desired false positive rate using the standard formulas:
//
//	m = ceil(-(n * ln p) / (ln 2)^2)
//	k = round((m / n) * ln 2)
//
// All arithmetic is performed in float64 and both results are clamped to
// at least 1. The computation is deterministic: the same (n, p) pair
// always yields the same (m, k).
//
// Out-of-domain inputs are substituted with usable defaults (n=0 becomes
// 1, p outside (0,1) becomes 0.01). Strict rejection of invalid
// configuration is the responsibility of [NewShared].
func OptimalParams(expectedItems uint64, fpRate float64) (m uint64, k uint32) {
	if expectedItems == 0 {
		expectedItems = 1
	}
	if fpRate <= 0 || fpRate >= 1 {
		fpRate = 0.01
	}

	m = uint64(math.Ceil(-(float64(expectedItems) * math.Log(fpRate)) / ln2Squared))
	if m == 0 {
		m = 1
	}

	k = uint32(math.Max(1, math.Round(float64(m)/float64(expectedItems)*ln2)))

	return m, k
}

// EstimateFalsePositiveRate estimates the false positive rate of a filter
// with m bits and k hash functions after n items have been added.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(m uint64, k uint32, n uint64) float64 {
	if m == 0 || n == 0 {
		return 0
	}

	return math.Pow(1-math.Exp(-float64(k)*float64(n)/float64(m)), float64(k))
}

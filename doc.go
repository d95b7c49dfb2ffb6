// Package bloom provides a bloom filter with a concurrency-safe shared
// handle for Go.
//
// A bloom filter is a space-efficient probabilistic data structure that
// tests whether an element is a member of a set. False positive matches
// are possible, but false negatives are not – if the filter says an
// element is not present, it definitely is not. If it says an element
// might be present, it could be a false positive.
//
// # Architecture
//
// The filter is a flat bit array sized by the standard formulas from the
// target capacity n and false positive rate p:
//
//	m = ceil(-(n * ln p) / (ln 2)²)
//	k = round((m / n) * ln 2)
//
// Instead of computing k independent hash functions per key, the filter
// computes a single 128-bit xxh3 hash and derives the k bit positions by
// double hashing: position i is (h1 + i*h2) mod m, where h1 and h2 are
// the two 64-bit halves of the hash. This simulates k independent hash
// functions with one hash computation while preserving the false positive
// bound (see "Less Hashing, Same Performance" below).
//
// # Implementations
//
// Two types are provided:
//
// [Filter] is the raw probabilistic store. It has no synchronization
// overhead and is the right choice for single-goroutine workloads or
// callers that provide their own locking.
//
// [SharedFilter] wraps one Filter and a running insertion counter behind
// a reader/writer lock for shared use across goroutines. Membership tests
// and stats snapshots take the lock in read mode and run concurrently
// with each other; inserts and clears take it exclusively, so the bit
// mutation and the counter update are always observed together. Each call
// is linearizable with respect to the others.
//
// # Choosing Parameters
//
// Use [New] or [NewShared] with your expected number of items and desired
// false positive rate:
//
//	// Shared filter for 1 million items with 1% false positive rate
//	f, err := bloom.NewShared(1_000_000, 0.01)
//
// Sizing is deterministic: the same (capacity, rate) pair always produces
// the same bit array length and hash count. For explicit control over m
// and k, use [NewWithParams].
//
// # False Positive Rate
//
// When the filter holds approximately its configured capacity it achieves
// approximately the target false positive rate. Inserting more items than
// the capacity raises the rate above the target; this is documented
// behavior, not a defect. Use [SharedFilter.EstimatedFalsePositiveRate]
// to monitor the current rate. Items cannot be removed individually and
// the filter never resizes – the only way back to the empty state is
// [SharedFilter.Clear], which keeps the sizing and discards all content.
//
// # Errors
//
// [NewShared] rejects a zero capacity and any rate outside (0, 1) with an
// error wrapping [ErrInvalidConfig] before allocating anything. If a
// panic ever escapes a mutating critical section, the handle latches a
// poisoned state and every later operation fails with [ErrPoisoned]
// rather than silently serving possibly inconsistent state.
//
// # References
//
//   - Bloom, "Space/Time Trade-offs in Hash Coding with Allowable Errors" (1970)
//   - Less Hashing, Same Performance: https://www.eecs.harvard.edu/~michaelm/postscripts/rsa2008.pdf
package bloom

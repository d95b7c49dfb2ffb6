package bloom

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrInvalidConfig is returned by NewShared when the capacity or the
	// false positive rate is outside its valid domain.
	ErrInvalidConfig = errors.New("bloom: invalid configuration")

	// ErrPoisoned is returned by every SharedFilter operation after a panic
	// escaped a mutating critical section. The bits and the insertion
	// counter may be out of step with each other, so the error is surfaced
	// on every call rather than retried or ignored.
	ErrPoisoned = errors.New("bloom: filter poisoned by earlier panic during write")
)

// Stats is a point-in-time snapshot of a SharedFilter, taken under a
// single read-lock acquisition.
type Stats struct {
	Bits              uint64  // Bit array length (m)
	Hashes            uint32  // Hash probes per key (k)
	FalsePositiveRate float64 // Configured target rate
	Inserted          uint64  // Successful Add calls since creation or the last Clear
}

// SharedFilter is a bloom filter safe for concurrent use by multiple
// goroutines. It exclusively owns one [Filter] and an insertion counter
// behind a single reader/writer lock: Member and Stats take the lock in
// read mode and proceed concurrently with each other, while Add and Clear
// take it exclusively, so the bit mutation and the counter update are
// observed as one atomic unit.
//
// Capacity and the false positive rate are validated once at construction
// and never change; the filter does not resize. Clear restores the empty
// state in place without changing the handle's identity or sizing.
type SharedFilter struct {
	capacity uint64
	fpRate   float64

	mu       sync.RWMutex
	filter   *Filter
	inserted uint64
	poisoned bool // Latched when a panic escapes a write section; guarded by mu
}

// NewShared creates a concurrent bloom filter sized for capacity items at
// the given target false positive rate.
//
// It fails with an error wrapping [ErrInvalidConfig] when capacity is
// zero or the rate is outside the open interval (0, 1). Construction is
// atomic: on failure no filter memory is allocated and no handle is
// returned.
func NewShared(capacity uint64, fpRate float64) (*SharedFilter, error) {
	if capacity == 0 {
		return nil, fmt.Errorf("%w: capacity must be greater than zero", ErrInvalidConfig)
	}
	if fpRate <= 0 || fpRate >= 1 {
		return nil, fmt.Errorf("%w: false positive rate must be in (0, 1), got %v", ErrInvalidConfig, fpRate)
	}

	return &SharedFilter{
		capacity: capacity,
		fpRate:   fpRate,
		filter:   New(capacity, fpRate),
	}, nil
}

// write runs fn under the exclusive lock. If fn panics the poisoned flag
// is latched before the panic propagates, so later calls fail with
// ErrPoisoned instead of operating on half-updated state.
func (s *SharedFilter) write(fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		return ErrPoisoned
	}

	completed := false
	defer func() {
		if !completed {
			s.poisoned = true
		}
	}()

	fn()
	completed = true
	return nil
}

// read runs fn under the shared lock.
func (s *SharedFilter) read(fn func()) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.poisoned {
		return ErrPoisoned
	}

	fn()
	return nil
}

// Add inserts data into the filter and increments the insertion counter.
// The two updates are a single atomic unit with respect to concurrent
// Add, Clear, Member, and Stats calls.
func (s *SharedFilter) Add(data []byte) error {
	return s.write(func() {
		s.filter.Add(data)
		s.inserted++
	})
}

// AddString inserts a string key without allocating.
func (s *SharedFilter) AddString(key string) error {
	return s.write(func() {
		s.filter.AddString(key)
		s.inserted++
	})
}

// Member checks if data might be in the filter. It has no side effects
// and runs concurrently with other Member and Stats calls.
func (s *SharedFilter) Member(data []byte) (bool, error) {
	var ok bool
	err := s.read(func() {
		ok = s.filter.Test(data)
	})
	return ok, err
}

// MemberString checks a string key without allocating.
func (s *SharedFilter) MemberString(key string) (bool, error) {
	var ok bool
	err := s.read(func() {
		ok = s.filter.TestString(key)
	})
	return ok, err
}

// Clear zeroes every bit and resets the insertion counter, atomically
// with respect to other mutating calls. Sizing is unchanged.
func (s *SharedFilter) Clear() error {
	return s.write(func() {
		s.filter.Clear()
		s.inserted = 0
	})
}

// Stats returns a snapshot of the filter taken under one read-lock
// acquisition, so the bit array size, hash count, and insertion counter
// are mutually consistent at the instant of the call.
func (s *SharedFilter) Stats() (Stats, error) {
	var st Stats
	err := s.read(func() {
		st = Stats{
			Bits:              s.filter.Bits(),
			Hashes:            s.filter.K(),
			FalsePositiveRate: s.fpRate,
			Inserted:          s.inserted,
		}
	})
	return st, err
}

// Capacity returns the item capacity the filter was sized for.
func (s *SharedFilter) Capacity() uint64 {
	return s.capacity
}

// FalsePositiveRate returns the configured target false positive rate.
func (s *SharedFilter) FalsePositiveRate() float64 {
	return s.fpRate
}

// FillRatio returns the proportion of bits currently set.
func (s *SharedFilter) FillRatio() (float64, error) {
	var ratio float64
	err := s.read(func() {
		ratio = s.filter.FillRatio()
	})
	return ratio, err
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// from the number of items inserted so far. It rises above the configured
// target once more than Capacity items have been inserted.
func (s *SharedFilter) EstimatedFalsePositiveRate() (float64, error) {
	var rate float64
	err := s.read(func() {
		rate = s.filter.EstimatedFalsePositiveRate(s.inserted)
	})
	return rate, err
}

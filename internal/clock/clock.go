// Package clock abstracts time retrieval and identifier generation so the
// managers are deterministic in tests.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Real reads the actual wall clock.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Sequence issues unique, timestamp-shaped identifiers: the current clock
// reading in milliseconds, bumped past the previously issued value when two
// calls land on the same millisecond. Not safe for concurrent use; the
// managers run single-threaded.
type Sequence struct {
	clock Clock
	last  int64
}

func NewSequence(c Clock) *Sequence {
	return &Sequence{clock: c}
}

// Next returns the next identifier.
func (s *Sequence) Next() int64 {
	id := s.clock.Now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

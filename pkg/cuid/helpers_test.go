package cuid

import (
	"time"

	"github.com/getmockd/cuid/internal/clock"
)

// fixedScope is a deterministic Scope.
type fixedScope struct {
	next uint64
	fp   string
}

func (s *fixedScope) NextCount() uint64 {
	v := s.next
	s.next++
	return v
}

func (s *fixedScope) Fingerprint() string { return s.fp }

// 2023-11-14T22:13:20Z, "loyw3v28" in base 36.
var fixedTime = time.UnixMilli(1700000000000)

func fixedClock() clock.Clock { return clock.Fixed(fixedTime) }

func beforeEpoch() clock.Clock {
	return clock.Fixed(time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC))
}

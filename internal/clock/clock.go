// Package clock provides the millisecond timestamp sampled for every
// identifier.
package clock

import (
	"errors"
	"fmt"
	"time"
)

// ErrBeforeEpoch reports a system clock set before 1970-01-01 UTC. Every
// identifier depends on a valid timestamp, so callers treat it as fatal.
var ErrBeforeEpoch = errors.New("clock: system time is before the Unix epoch")

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Func adapts a function to Clock.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time { return f() }

// System returns the wall clock.
func System() Clock { return Func(time.Now) }

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) Clock { return Func(func() time.Time { return t }) }

// Millis samples c and returns milliseconds since the Unix epoch.
func Millis(c Clock) (uint64, error) {
	now := c.Now()
	ms := now.UnixMilli()
	if ms < 0 {
		return 0, fmt.Errorf("%w: %s", ErrBeforeEpoch, now.UTC().Format(time.RFC3339))
	}
	return uint64(ms), nil
}

package cuid

import (
	"errors"

	"github.com/getmockd/cuid/internal/clock"
)

var (
	// ErrInvalidLength is returned when a V2 generator is configured with a
	// length outside [MinLength, MaxLength].
	ErrInvalidLength = errors.New("cuid: invalid length")

	// ErrClockBeforeEpoch is returned when the clock reports a time before
	// 1970-01-01 UTC. It indicates a broken environment, not a retryable
	// condition.
	ErrClockBeforeEpoch = clock.ErrBeforeEpoch
)

// Must returns id, panicking if err is non-nil. It is intended for
// initialization code where a broken clock should stop the program:
//
//	var rootID = cuid.Must(cuid.New())
func Must(id string, err error) string {
	if err != nil {
		panic(err)
	}
	return id
}

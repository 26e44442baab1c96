// Package cuid generates collision-resistant identifiers that are safe to
// create on independent, unsynchronized machines.
//
// Two formats are supported:
//
//   - V1, the legacy fixed-format CUID: the letter 'c', a base-36 timestamp,
//     a 4-character counter, a 4-character host fingerprint and two
//     4-character random blocks (25 characters). A 10-character slug form is
//     available for short URLs, with much weaker uniqueness.
//   - V2, a SHA3-512 hash of timestamp, entropy, counter and fingerprint,
//     rendered in base 36 and cut to a configurable length (default 24)
//     behind a random lowercase letter.
//
// # Usage
//
//	id, err := cuid.New()        // V2, 24 characters
//	id, err := cuid.NewV2(32)    // V2, 32 characters
//	id, err := cuid.NewV1()      // V1, 25 characters
//	slug, err := cuid.NewV1Slug() // V1 slug, 10 characters
//
// For repeated generation with custom settings build a generator once:
//
//	gen, err := cuid.NewV2Generator(cuid.WithLength(16))
//	if err != nil {
//	    return err
//	}
//	id, err := gen.New()
//
// # Scopes
//
// Counter and fingerprint live in a Scope. V1 uses one scope per generator
// (a lock-free shared counter and a fingerprint computed once). V2 uses many
// scopes, each owned by one goroutine at a time: New borrows one from a pool,
// and NewScope hands out a scope a worker goroutine keeps for its lifetime.
//
// # Errors
//
// Generation only fails when the system clock reports a time before the
// Unix epoch (ErrClockBeforeEpoch). Construction fails when a V2 length is
// out of range (ErrInvalidLength). Missing host identity never fails; it is
// replaced with random bits.
//
// # Validation
//
// The Is* functions check shape only: length, first character and the
// [0-9a-z] alphabet. They accept any string of the right shape, generated
// by this package or not.
package cuid

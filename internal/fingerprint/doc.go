// Package fingerprint derives the short salt that keeps identifier streams
// from different hosts, processes and goroutine scopes apart when their
// counters and timestamps coincide.
//
// Two schemes are provided:
//
//   - V1: a 4-character value built from the host name and process id.
//   - V2: a 32-character SHA3-512 digest of random values, the process id
//     and a hash of the calling OS thread plus a scope sequence number.
//
// Neither scheme fails. Host identity that cannot be read (no host name,
// sandboxed process id, unsupported thread id) is replaced with random bits
// and reported through the logger.
package fingerprint

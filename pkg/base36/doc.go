// Package base36 converts unsigned integers to and from the lowercase
// base-36 alphabet (0-9a-z) used by every CUID component.
//
// Fixed-width fields are produced with PadOrTruncate, which left-pads short
// values with '0' and keeps only the least-significant (rightmost) digits of
// long values. Truncation is the intended policy, not an error.
package base36

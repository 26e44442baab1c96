package cuid

import "github.com/getmockd/cuid/pkg/base36"

// IsV1 reports whether s has the shape of a V1 identifier: V1Length to
// V1MaxLength characters, starting with 'c', then [0-9a-z].
func IsV1(s string) bool {
	return IsV1Max(s, V1MaxLength)
}

// IsV1Max is IsV1 with a caller-chosen maximum length.
func IsV1Max(s string, maxLength int) bool {
	if len(s) < V1Length || len(s) > maxLength {
		return false
	}
	return s[:len(V1Prefix)] == V1Prefix && digits(s[len(V1Prefix):])
}

// IsV1Slug reports whether s has the shape of a V1 slug: SlugLength
// characters of [0-9a-z].
func IsV1Slug(s string) bool {
	return len(s) == SlugLength && digits(s)
}

// IsV2 reports whether s has the shape of a V2 identifier of any length a
// generator can produce: a lowercase letter followed by [0-9a-z], at most
// MaxLength characters. Use IsV2Max(s, BigLength) for the 32-character
// limit of other implementations.
func IsV2(s string) bool {
	return IsV2Max(s, MaxLength)
}

// IsV2Max is IsV2 with a caller-chosen maximum length.
func IsV2Max(s string, maxLength int) bool {
	if len(s) < MinLength || len(s) > maxLength {
		return false
	}
	return isLetter(s[0]) && digits(s[1:])
}

// IsV2Slug reports whether s has the shape of a NewV2Slug identifier.
func IsV2Slug(s string) bool {
	return len(s) == SlugLength && IsV2Max(s, SlugLength)
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !base36.IsDigit(s[i]) {
			return false
		}
	}
	return true
}

package base36

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Radix is the numeric base of every encoded value.
const Radix = 36

// Alphabet lists the digits in value order.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Errors returned by Decode.
var (
	ErrInvalidDigit = errors.New("base36: invalid digit")
	ErrOverflow     = errors.New("base36: value overflows uint64")
)

// Encode renders n in base 36.
func Encode(n uint64) string {
	if n < Radix {
		// Slicing a constant avoids an allocation on the hot path.
		return Alphabet[n : n+1]
	}
	return strconv.FormatUint(n, Radix)
}

// EncodePadded renders n in base 36 at exactly width characters.
func EncodePadded(n uint64, width int) string {
	return PadOrTruncate(Encode(n), width)
}

// EncodeBytes renders b, read as a big-endian unsigned integer of any width,
// in base 36. An empty or all-zero slice encodes as "0".
func EncodeBytes(b []byte) string {
	return new(big.Int).SetBytes(b).Text(Radix)
}

// Decode parses a base-36 string produced by Encode.
func Decode(s string) (uint64, error) {
	if err := checkDigits(s); err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, Radix, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, s)
	}
	return n, nil
}

// DecodeBig parses a base-36 string of any length.
func DecodeBig(s string) (*big.Int, error) {
	if err := checkDigits(s); err != nil {
		return nil, err
	}
	n, ok := new(big.Int).SetString(s, Radix)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDigit, s)
	}
	return n, nil
}

// MaxPowWidth is the widest field whose value space, 36^width, fits a uint64.
const MaxPowWidth = 12

// Pow returns 36^width, the number of distinct values a field of width
// characters can hold. It panics if width exceeds MaxPowWidth.
func Pow(width int) uint64 {
	if width < 0 || width > MaxPowWidth {
		panic(fmt.Sprintf("base36: width %d out of range [0, %d]", width, MaxPowWidth))
	}
	n := uint64(1)
	for i := 0; i < width; i++ {
		n *= Radix
	}
	return n
}

// PadOrTruncate returns s at exactly width characters: shorter input is
// left-padded with '0', longer input keeps its rightmost width characters.
func PadOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	switch n := len(s); {
	case n == width:
		return s
	case n > width:
		return s[n-width:]
	default:
		return strings.Repeat("0", width-n) + s
	}
}

// IsDigit reports whether c belongs to the base-36 alphabet.
func IsDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z')
}

// checkDigits rejects empty input and anything outside the lowercase
// alphabet; strconv alone would also accept upper case.
func checkDigits(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty string", ErrInvalidDigit)
	}
	for i := 0; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, s[i], i)
		}
	}
	return nil
}

// Package entropy supplies the cryptographically random digits mixed into
// every identifier. Entropy is drawn fresh for each identifier and never
// cached.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/getmockd/cuid/pkg/base36"
)

// Source returns uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Uint64N(n uint64) uint64
}

// cryptoSource reads straight from crypto/rand. It is stateless, so the
// shared rand.Rand wrapping it is safe for concurrent use.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never returns an error; it crashes the program
	// irrecoverably if the OS generator fails.
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

var shared = rand.New(cryptoSource{})

// Crypto returns the process-wide source backed by crypto/rand. It may be
// used from any number of goroutines. Uint64N rejects out-of-range draws,
// so results carry no modulo bias.
func Crypto() Source {
	return shared
}

// NewScoped returns a ChaCha8 generator seeded from crypto/rand. It is much
// cheaper per draw than Crypto but must be owned by a single goroutine.
func NewScoped() *rand.Rand {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// Block draws one integer in [0, 36^width) and renders it at exactly width
// characters.
func Block(src Source, width int) string {
	return base36.EncodePadded(src.Uint64N(base36.Pow(width)), width)
}

// String returns length characters, each uniform over the base-36 alphabet.
func String(src Source, length int) string {
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	fill(src, buf)
	return string(buf)
}

// fill writes uniform base-36 digits into buf. A single draw in
// [0, 36^12) yields twelve independent uniform digits.
func fill(src Source, buf []byte) {
	const chunk = base36.MaxPowWidth
	space := base36.Pow(chunk)
	for i := 0; i < len(buf); {
		v := src.Uint64N(space)
		for j := 0; j < chunk && i < len(buf); j++ {
			buf[i] = base36.Alphabet[v%base36.Radix]
			v /= base36.Radix
			i++
		}
	}
}

// Letter returns one character uniform over a-z.
func Letter(src Source) byte {
	return 'a' + byte(src.Uint64N(26))
}

// Range returns an integer uniform in [lo, hi). It panics if hi <= lo.
func Range(src Source, lo, hi uint64) uint64 {
	if hi <= lo {
		panic("entropy: empty range")
	}
	return lo + src.Uint64N(hi-lo)
}

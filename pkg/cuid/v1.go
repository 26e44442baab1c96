package cuid

import (
	"strings"
	"sync"

	"github.com/getmockd/cuid/internal/clock"
	"github.com/getmockd/cuid/internal/counter"
	"github.com/getmockd/cuid/internal/entropy"
	"github.com/getmockd/cuid/internal/fingerprint"
	"github.com/getmockd/cuid/pkg/base36"
)

const (
	// V1Prefix starts every V1 identifier.
	V1Prefix = "c"
	// V1Length is the length of a V1 identifier while the timestamp fits
	// eight base-36 digits (until the year 2059).
	V1Length = 25
	// V1MaxLength is the longest V1 identifier IsV1 accepts; a nine-digit
	// timestamp lasts until the year 5188.
	V1MaxLength = 26
	// SlugLength is the length of V1 slugs and of NewV2Slug identifiers.
	SlugLength = 10

	// BlockSize is the width of the V1 counter and random blocks.
	BlockSize = 4
	// TimestampWidth is the minimum width of the V1 timestamp field.
	TimestampWidth = 8
)

// V1Generator builds V1 identifiers and slugs. It is safe for concurrent
// use: the counter is lock-free and the fingerprint is computed once.
type V1Generator struct {
	clock   clock.Clock
	entropy entropy.Source
	scope   Scope
	process *processScope
}

// NewV1Generator returns a V1 generator with its own counter and
// fingerprint. WithLength is ignored.
func NewV1Generator(opts ...Option) *V1Generator {
	o := newOptions(opts)
	g := &V1Generator{
		clock:   o.clock,
		entropy: o.entropy,
		scope:   o.scope,
	}
	if g.entropy == nil {
		g.entropy = entropy.Crypto()
	}
	if g.scope == nil {
		g.process = newProcessScope(o.identity, g.entropy, o.log)
		g.scope = g.process
	}
	return g
}

// New returns a 25-character V1 identifier.
func (g *V1Generator) New() (string, error) {
	ms, err := clock.Millis(g.clock)
	if err != nil {
		return "", err
	}

	ts := timestampField(ms)
	var b strings.Builder
	b.Grow(len(V1Prefix) + len(ts) + 4*BlockSize)
	b.WriteString(V1Prefix)
	b.WriteString(ts)
	b.WriteString(base36.EncodePadded(g.scope.NextCount(), BlockSize))
	b.WriteString(g.fingerprint())
	b.WriteString(entropy.Block(g.entropy, BlockSize))
	b.WriteString(entropy.Block(g.entropy, BlockSize))
	return b.String(), nil
}

// Slug returns a 10-character V1 slug: the last two timestamp digits, the
// four counter digits, the first and last fingerprint characters and two
// random digits.
//
// Slugs repeat far sooner than full identifiers. A host producing more than
// about a million slugs per second will see duplicates; use New when
// uniqueness matters.
func (g *V1Generator) Slug() (string, error) {
	ms, err := clock.Millis(g.clock)
	if err != nil {
		return "", err
	}

	fp := g.fingerprint()
	var b strings.Builder
	b.Grow(SlugLength)
	b.WriteString(base36.EncodePadded(ms, 2))
	b.WriteString(base36.EncodePadded(g.scope.NextCount(), BlockSize))
	b.WriteByte(fp[0])
	b.WriteByte(fp[len(fp)-1])
	b.WriteString(entropy.Block(g.entropy, BlockSize)[BlockSize-2:])
	return b.String(), nil
}

// Reseed moves the counter to a new random position, as if the generator
// had just been created. It has no effect with WithScope.
func (g *V1Generator) Reseed() {
	if g.process != nil {
		g.process.counter.Store(counter.RandomSeed(g.entropy, v1CounterModulus))
	}
}

// fingerprint forces the scope fingerprint to the V1 width.
func (g *V1Generator) fingerprint() string {
	return base36.PadOrTruncate(g.scope.Fingerprint(), fingerprint.V1Width)
}

// timestampField renders ms at least TimestampWidth digits wide. Wider
// values are kept whole.
func timestampField(ms uint64) string {
	ts := base36.Encode(ms)
	if len(ts) < TimestampWidth {
		return base36.PadOrTruncate(ts, TimestampWidth)
	}
	return ts
}

var defaultV1 = sync.OnceValue(func() *V1Generator {
	return NewV1Generator()
})

// NewV1 returns a V1 identifier from the process-wide V1 generator.
func NewV1() (string, error) {
	return defaultV1().New()
}

// NewV1Slug returns a V1 slug from the process-wide V1 generator.
func NewV1Slug() (string, error) {
	return defaultV1().Slug()
}

package cuid

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/getmockd/cuid/internal/clock"
	"github.com/getmockd/cuid/internal/entropy"
	"github.com/getmockd/cuid/pkg/base36"
)

const (
	// DefaultLength is the V2 length used by New.
	DefaultLength = 24
	// BigLength is the conventional long V2 length, and the limit other
	// implementations validate against.
	BigLength = 32
	// MinLength is the shortest V2 identifier: one letter and one digit.
	MinLength = 2
	// MaxLength is the longest V2 identifier a generator can be configured
	// for: one letter plus DigestDigits.
	MaxLength = DigestDigits + 1

	// DigestDigits is the number of base-36 digits taken from the padded
	// SHA3-512 rendering; 36^99 < 2^512.
	DigestDigits = 99
)

// V2Generator builds V2 identifiers. It is safe for concurrent use; each
// call runs in a scope no other goroutine is using.
type V2Generator struct {
	length  int
	clock   clock.Clock
	entropy entropy.Source
	scope   Scope
	scopes  *scopePool
}

// NewV2Generator returns a V2 generator. It fails with ErrInvalidLength
// when WithLength is outside [MinLength, MaxLength].
func NewV2Generator(opts ...Option) (*V2Generator, error) {
	o := newOptions(opts)
	if o.length < MinLength || o.length > MaxLength {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidLength, o.length, MinLength, MaxLength)
	}

	g := &V2Generator{
		length:  o.length,
		clock:   o.clock,
		entropy: o.entropy,
		scope:   o.scope,
	}
	if g.scope == nil {
		if o.customIdentity {
			g.scopes = newScopePool(o.identity, o.log)
		} else {
			g.scopes = defaultScopes
		}
	}
	return g, nil
}

// Length returns the length of identifiers produced by g.
func (g *V2Generator) Length() int {
	return g.length
}

// New returns a V2 identifier.
func (g *V2Generator) New() (string, error) {
	if g.scopes == nil {
		return g.assemble(g.scope, g.source(nil))
	}
	s := g.scopes.get()
	defer g.scopes.put(s)
	return g.assemble(s, g.source(s.rng))
}

// NewScope returns a scope with its own counter and fingerprint for a single
// worker goroutine to keep. Generating through it skips the pool.
func (g *V2Generator) NewScope() *V2Scope {
	if g.scopes == nil {
		return &V2Scope{gen: g, scope: g.scope, src: g.source(nil)}
	}
	s := g.scopes.create()
	return &V2Scope{gen: g, scope: s, src: g.source(s.rng)}
}

// source picks the entropy for one call: an injected source first, then
// the scope's own generator, then crypto/rand.
func (g *V2Generator) source(scoped entropy.Source) entropy.Source {
	switch {
	case g.entropy != nil:
		return g.entropy
	case scoped != nil:
		return scoped
	default:
		return entropy.Crypto()
	}
}

// assemble hashes timestamp, entropy, counter and fingerprint with
// SHA3-512, keeps the last length-1 base-36 digits of the digest and
// prefixes a random letter.
//
// Truncating the rendering instead of deriving a digest of the exact size
// leaves a slight bias in the most significant kept digit when length is
// close to MaxLength. At the default lengths it is not measurable.
func (g *V2Generator) assemble(s Scope, src entropy.Source) (string, error) {
	ms, err := clock.Millis(g.clock)
	if err != nil {
		return "", err
	}

	ts := base36.Encode(ms)
	salt := entropy.String(src, g.length)
	count := base36.Encode(s.NextCount())
	fp := s.Fingerprint()

	input := make([]byte, 0, len(ts)+len(salt)+len(count)+len(fp))
	input = append(input, ts...)
	input = append(input, salt...)
	input = append(input, count...)
	input = append(input, fp...)
	digest := sha3.Sum512(input)

	body := base36.PadOrTruncate(base36.EncodeBytes(digest[:]), DigestDigits)

	id := make([]byte, g.length)
	id[0] = entropy.Letter(src)
	copy(id[1:], body[DigestDigits-(g.length-1):])
	return string(id), nil
}

// V2Scope is a generator scope owned by one goroutine. It must not be used
// concurrently.
type V2Scope struct {
	gen   *V2Generator
	scope Scope
	src   entropy.Source
}

// New returns a V2 identifier using the scope's counter and fingerprint.
func (s *V2Scope) New() (string, error) {
	return s.gen.assemble(s.scope, s.src)
}

// NextCount returns the scope's next counter value.
func (s *V2Scope) NextCount() uint64 { return s.scope.NextCount() }

// Fingerprint returns the scope's fingerprint.
func (s *V2Scope) Fingerprint() string { return s.scope.Fingerprint() }

var defaultV2 = sync.OnceValue(func() *V2Generator {
	g, err := NewV2Generator()
	if err != nil {
		panic(err)
	}
	return g
})

var slugV2 = sync.OnceValue(func() *V2Generator {
	g, err := NewV2Generator(WithLength(SlugLength))
	if err != nil {
		panic(err)
	}
	return g
})

// New returns a V2 identifier of DefaultLength characters.
func New() (string, error) {
	return defaultV2().New()
}

// NewV2 returns a V2 identifier of the given length. It fails with
// ErrInvalidLength outside [MinLength, MaxLength].
func NewV2(length uint16) (string, error) {
	if length == DefaultLength {
		return New()
	}
	g, err := NewV2Generator(WithLength(int(length)))
	if err != nil {
		return "", err
	}
	return g.New()
}

// NewV2Slug returns a 10-character V2 identifier.
func NewV2Slug() (string, error) {
	return slugV2().New()
}

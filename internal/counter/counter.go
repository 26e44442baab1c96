// Package counter implements the wrapping monotonic counters that keep
// identifiers generated in the same millisecond distinct.
//
// A counter holds a value in [0, modulus). Next returns the current value and
// advances it, wrapping silently to zero after modulus-1. Counters start at a
// random seed so that restarted processes do not replay the same sequence.
package counter

import (
	"fmt"
	"sync/atomic"

	"github.com/getmockd/cuid/internal/entropy"
)

// Atomic is a counter shared by many goroutines. Next is lock-free: it
// retries a compare-and-swap until its increment lands, so no increment is
// lost and no two callers observe the same value within one cycle.
type Atomic struct {
	value   atomic.Uint64
	modulus uint64
}

// NewAtomic returns a shared counter starting at seed mod modulus.
// It panics if modulus is zero.
func NewAtomic(modulus, seed uint64) *Atomic {
	mustModulus(modulus)
	c := &Atomic{modulus: modulus}
	c.value.Store(seed % modulus)
	return c
}

// NewAtomicRandom returns a shared counter seeded uniformly from src.
func NewAtomicRandom(modulus uint64, src entropy.Source) *Atomic {
	return NewAtomic(modulus, RandomSeed(src, modulus))
}

// Next returns the current value and advances the counter.
func (c *Atomic) Next() uint64 {
	for {
		cur := c.value.Load()
		if c.value.CompareAndSwap(cur, step(cur, c.modulus)) {
			return cur
		}
	}
}

// Store sets the next value Next will return.
func (c *Atomic) Store(v uint64) {
	c.value.Store(v % c.modulus)
}

// Modulus returns the number of distinct values the counter cycles through.
func (c *Atomic) Modulus() uint64 {
	return c.modulus
}

// Local is a counter owned by a single goroutine. It performs no
// synchronization; uniqueness across owners comes from their fingerprints.
type Local struct {
	value   uint64
	modulus uint64
}

// NewLocal returns an unsynchronized counter starting at seed mod modulus.
// It panics if modulus is zero.
func NewLocal(modulus, seed uint64) *Local {
	mustModulus(modulus)
	return &Local{value: seed % modulus, modulus: modulus}
}

// NewLocalRandom returns an unsynchronized counter seeded uniformly from src.
func NewLocalRandom(modulus uint64, src entropy.Source) *Local {
	return NewLocal(modulus, RandomSeed(src, modulus))
}

// Next returns the current value and advances the counter.
func (c *Local) Next() uint64 {
	cur := c.value
	c.value = step(cur, c.modulus)
	return cur
}

// Store sets the next value Next will return.
func (c *Local) Store(v uint64) {
	c.value = v % c.modulus
}

// Modulus returns the number of distinct values the counter cycles through.
func (c *Local) Modulus() uint64 {
	return c.modulus
}

// RandomSeed draws an initial value uniformly from [0, modulus).
func RandomSeed(src entropy.Source, modulus uint64) uint64 {
	mustModulus(modulus)
	return src.Uint64N(modulus)
}

func step(v, modulus uint64) uint64 {
	if v >= modulus-1 {
		return 0
	}
	return v + 1
}

func mustModulus(modulus uint64) {
	if modulus == 0 {
		panic(fmt.Sprintf("counter: invalid modulus %d", modulus))
	}
}

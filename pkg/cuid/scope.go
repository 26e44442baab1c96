package cuid

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/getmockd/cuid/internal/counter"
	"github.com/getmockd/cuid/internal/entropy"
	"github.com/getmockd/cuid/internal/fingerprint"
	"github.com/getmockd/cuid/pkg/base36"
	"github.com/getmockd/cuid/pkg/logging"
)

// Scope supplies the counter and fingerprint of one identifier stream.
type Scope interface {
	// NextCount returns the next counter value.
	NextCount() uint64
	// Fingerprint returns the scope's fingerprint. It must not change
	// between calls.
	Fingerprint() string
}

var defaultLogger = logging.Nop()

// processScope is the V1 scope: one counter shared by every goroutine and a
// fingerprint computed on first use.
type processScope struct {
	counter     *counter.Atomic
	fingerprint func() string
}

func newProcessScope(id fingerprint.Identity, src entropy.Source, log *slog.Logger) *processScope {
	return &processScope{
		counter: counter.NewAtomicRandom(v1CounterModulus, src),
		fingerprint: sync.OnceValue(func() string {
			return fingerprint.V1(id, src, log)
		}),
	}
}

func (s *processScope) NextCount() uint64   { return s.counter.Next() }
func (s *processScope) Fingerprint() string { return s.fingerprint() }

// localScope is a V2 scope. It is used by one goroutine at a time, so it
// needs no synchronization.
type localScope struct {
	counter     *counter.Local
	rng         *rand.Rand
	fingerprint string
}

func (s *localScope) NextCount() uint64   { return s.counter.Next() }
func (s *localScope) Fingerprint() string { return s.fingerprint }

// scopePool hands out localScopes. A scope taken with get belongs to the
// caller until put returns it.
type scopePool struct {
	pool     sync.Pool
	seq      atomic.Uint64
	identity fingerprint.Identity
	log      *slog.Logger
}

func newScopePool(id fingerprint.Identity, log *slog.Logger) *scopePool {
	p := &scopePool{identity: id, log: log}
	p.pool.New = func() any { return p.create() }
	return p
}

func (p *scopePool) create() *localScope {
	seq := p.seq.Add(1)
	rng := entropy.NewScoped()
	s := &localScope{
		counter:     counter.NewLocalRandom(v2CounterModulus, rng),
		rng:         rng,
		fingerprint: fingerprint.V2(p.identity, rng, seq, p.log),
	}
	p.log.Debug("created generator scope", "seq", seq)
	return s
}

func (p *scopePool) get() *localScope  { return p.pool.Get().(*localScope) }
func (p *scopePool) put(s *localScope) { p.pool.Put(s) }

var (
	v1CounterModulus = base36.Pow(BlockSize)
	v2CounterModulus = base36.Pow(base36.MaxPowWidth)

	defaultScopes = newScopePool(fingerprint.System(), defaultLogger)
)

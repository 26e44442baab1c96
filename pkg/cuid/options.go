package cuid

import (
	"log/slog"

	"github.com/getmockd/cuid/internal/clock"
	"github.com/getmockd/cuid/internal/entropy"
	"github.com/getmockd/cuid/internal/fingerprint"
)

// Option configures a generator.
type Option func(*options)

type options struct {
	length   int
	clock    clock.Clock
	identity fingerprint.Identity
	entropy  entropy.Source
	scope    Scope
	log      *slog.Logger

	// customIdentity is set when identity or logger were supplied, so the
	// generator cannot share the package scope pool.
	customIdentity bool
}

func newOptions(opts []Option) options {
	o := options{
		length:   DefaultLength,
		clock:    clock.System(),
		identity: fingerprint.System(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = defaultLogger
	}
	return o
}

// WithLength sets the V2 identifier length. V1 generators ignore it.
func WithLength(n int) Option {
	return func(o *options) { o.length = n }
}

// WithClock replaces the wall clock.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithIdentity replaces the host, process and thread identity used to
// compute fingerprints.
func WithIdentity(id fingerprint.Identity) Option {
	return func(o *options) {
		o.identity = id
		o.customIdentity = true
	}
}

// WithEntropy replaces the random source. The source must be safe for
// concurrent use if the generator is shared between goroutines.
func WithEntropy(src entropy.Source) Option {
	return func(o *options) { o.entropy = src }
}

// WithScope makes the generator draw counter values and the fingerprint
// from s instead of its own scopes. It lets tests pin both.
func WithScope(s Scope) Option {
	return func(o *options) { o.scope = s }
}

// WithLogger sets the logger for fingerprint fallbacks and scope creation.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
		o.customIdentity = true
	}
}

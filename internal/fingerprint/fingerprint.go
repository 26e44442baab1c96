package fingerprint

import (
	"encoding/binary"
	"hash"
	"log/slog"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/sha3"

	"github.com/getmockd/cuid/internal/entropy"
	"github.com/getmockd/cuid/pkg/base36"
)

const (
	// V1Width is the length of a V1 fingerprint.
	V1Width = 4
	// V2Width is the length of a V2 fingerprint.
	V2Width = 32

	partWidth = V1Width / 2

	saltLow  = 2063
	saltHigh = 4126
)

// HostComponent folds a host name into two base-36 characters: the sum of
// its character codes plus its byte length plus the radix.
func HostComponent(hostname string) string {
	sum := uint64(len(hostname) + base36.Radix)
	for _, r := range hostname {
		sum += uint64(r)
	}
	return base36.EncodePadded(sum, partWidth)
}

// PIDComponent renders a process id at two base-36 characters.
func PIDComponent(pid int) string {
	return base36.EncodePadded(uint64(pid), partWidth)
}

// V1 returns the 4-character host and process fingerprint.
func V1(id Identity, src entropy.Source, log *slog.Logger) string {
	var host string
	if name, err := id.Hostname(); err != nil || name == "" {
		log.Warn("host name unavailable, using random fingerprint", "error", err)
		host = entropy.Block(src, partWidth)
	} else {
		host = HostComponent(name)
	}

	var proc string
	if pid, err := id.PID(); err != nil {
		log.Warn("process id unavailable, using random fingerprint", "error", err)
		proc = entropy.Block(src, partWidth)
	} else {
		proc = PIDComponent(pid)
	}

	return host + proc
}

// V2 returns the 32-character fingerprint of one generator scope. seq
// distinguishes scopes created on the same OS thread.
func V2(id Identity, src entropy.Source, seq uint64, log *slog.Logger) string {
	h := sha3.New512()
	writeUint64(h, entropy.Range(src, saltLow, saltHigh))
	writeUint64(h, src.Uint64N(math.MaxUint64))

	if pid, err := id.PID(); err != nil {
		log.Warn("process id unavailable, using random salt", "error", err)
		writeUint64(h, src.Uint64N(math.MaxUint64))
	} else {
		writeUint64(h, uint64(pid))
	}

	writeUint64(h, ThreadHash(id, src, seq))

	return base36.PadOrTruncate(base36.EncodeBytes(h.Sum(nil)), V2Width)
}

// ThreadHash hashes the calling OS thread id together with seq. Without a
// thread id the hash covers a random value instead.
func ThreadHash(id Identity, src entropy.Source, seq uint64) uint64 {
	tid, err := id.ThreadID()
	if err != nil {
		tid = src.Uint64N(math.MaxUint64)
	}
	d := xxhash.New()
	writeUint64(d, tid)
	writeUint64(d, seq)
	return d.Sum64()
}

func writeUint64(h hash.Hash, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	_, _ = h.Write(b[:])
}

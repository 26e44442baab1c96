package fingerprint

import (
	"errors"
	"fmt"
	"os"
)

// ErrUnavailable is returned by an Identity that cannot supply a value on
// the current platform.
var ErrUnavailable = errors.New("fingerprint: identity unavailable")

// Identity reports where identifiers are being generated.
type Identity interface {
	Hostname() (string, error)
	PID() (int, error)
	ThreadID() (uint64, error)
}

type system struct{}

// System returns the Identity of the running process.
func System() Identity { return system{} }

func (system) Hostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("%w: hostname: %w", ErrUnavailable, err)
	}
	if name == "" {
		return "", fmt.Errorf("%w: empty hostname", ErrUnavailable)
	}
	return name, nil
}

func (system) PID() (int, error) {
	pid := os.Getpid()
	if pid < 0 {
		return 0, fmt.Errorf("%w: pid %d", ErrUnavailable, pid)
	}
	return pid, nil
}

func (system) ThreadID() (uint64, error) {
	return threadID()
}

// Static is an Identity with fixed values. A non-nil Err is returned from
// every method.
type Static struct {
	Host   string
	Pid    int
	Thread uint64
	Err    error
}

func (s Static) Hostname() (string, error) { return s.Host, s.Err }
func (s Static) PID() (int, error)         { return s.Pid, s.Err }
func (s Static) ThreadID() (uint64, error) { return s.Thread, s.Err }

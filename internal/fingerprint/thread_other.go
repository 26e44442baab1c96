//go:build !linux && !windows

package fingerprint

import "fmt"

func threadID() (uint64, error) {
	return 0, fmt.Errorf("%w: thread id", ErrUnavailable)
}

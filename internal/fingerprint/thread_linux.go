//go:build linux

package fingerprint

import "golang.org/x/sys/unix"

func threadID() (uint64, error) {
	return uint64(unix.Gettid()), nil
}

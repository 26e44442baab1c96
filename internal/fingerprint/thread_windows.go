//go:build windows

package fingerprint

import "golang.org/x/sys/windows"

func threadID() (uint64, error) {
	return uint64(windows.GetCurrentThreadId()), nil
}

package cli

import (
	"io"

	"github.com/getmockd/cuid/pkg/cli/internal/output"
)

// printResult outputs a single command result.
//
// Contract: when --json is active, ONLY the JSON encoding of data is written
// to w. textFn is called only in text mode.
func printResult(w io.Writer, jsonMode bool, data any, textFn func() error) error {
	if jsonMode {
		return output.JSON(w, data)
	}
	return textFn()
}

package cli

import "errors"

// ErrInvalidID is returned by validate when at least one identifier fails.
var ErrInvalidID = errors.New("invalid identifier")

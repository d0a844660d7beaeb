// Package batch builds committed hook queues from loosely-shaped input and
// defines the boundary error values reported to the error handler.
package batch

import "errors"

// Error definitions for batch package.
var (
	// Entry validation errors.
	ErrMissingHook      = errors.New("entry is missing a hook name")
	ErrMissingPayload   = errors.New("entry has no operation payload")
	ErrAmbiguousPayload = errors.New("entry has more than one operation payload")
	ErrIncompleteClass  = errors.New("class entry requires both class and method names")
	ErrUnsupportedValue = errors.New("unsupported value type for hook")

	// File errors.
	ErrFileParse = errors.New("failed to parse batch file")
)

// Package queue implements the hookbatch commit engine and error
// definitions.
package queue

import "errors"

// Error definitions for queue package.
var (
	// Construction errors.
	ErrNilRegistry = errors.New("registry cannot be nil")

	// Mutation errors.
	ErrAlreadyCommitted = errors.New("queue is already committed")
	ErrEmptyHookName    = errors.New("hook name cannot be empty")
	ErrUnknownOperation = errors.New("unknown operation")
)

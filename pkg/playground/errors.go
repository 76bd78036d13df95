package playground

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("playground: aborted")
	// ErrUnknownOperation is returned for operation names Execute does not know.
	ErrUnknownOperation = errors.New("playground: unknown operation")
)

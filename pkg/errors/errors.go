package errors

import "errors"

var (
	ErrStreamCancelled  = errors.New("stream cancelled by client")
	ErrCommandTimeout   = errors.New("command timed out")
	ErrCommandStart     = errors.New("command failed to start")
	ErrTooManySessions  = errors.New("too many concurrent sessions")
	ErrUnknownOperation = errors.New("unknown operation")
)

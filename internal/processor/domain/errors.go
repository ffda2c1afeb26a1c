package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a session failed.
type ErrorKind string

const (
	KindInvalidMetadata  ErrorKind = "InvalidMetadata"
	KindIOError          ErrorKind = "IOError"
	KindTransformFailed  ErrorKind = "TransformFailed"
	KindPeerDisconnected ErrorKind = "PeerDisconnected"
	KindTimeout          ErrorKind = "Timeout"
)

// SessionError is the single error type sessions produce.
type SessionError struct {
	Kind ErrorKind
	Op   Operation
	Msg  string
	Err  error
}

func (e *SessionError) Error() string {
	prefix := string(e.Kind)
	if e.Op != "" {
		prefix = fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", prefix, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", prefix, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	default:
		return prefix
	}
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

// Is matches another *SessionError by kind so callers can write
// errors.Is(err, &SessionError{Kind: KindTimeout}).
func (e *SessionError) Is(target error) bool {
	t, ok := target.(*SessionError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

// Message is what the client sees in a failed status frame.
func (e *SessionError) Message() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func NewSessionError(kind ErrorKind, op Operation, msg string, err error) *SessionError {
	return &SessionError{Kind: kind, Op: op, Msg: msg, Err: err}
}

func InvalidMetadata(op Operation, format string, args ...interface{}) *SessionError {
	return &SessionError{Kind: KindInvalidMetadata, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first SessionError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var se *SessionError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return "", false
}

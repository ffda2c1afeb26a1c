package domain

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import "context"

// RawMetadata is the structured metadata arm exactly as received, before
// validation.
type RawMetadata struct {
	FileName     string
	OutputFormat string
	// Width and Height are nil when the client did not send them.
	Width  *int32
	Height *int32
}

// Frame is one inbound message. At most one of Metadata and Content is
// meaningful; HasContent distinguishes an empty content arm from no arm.
type Frame struct {
	Metadata   *RawMetadata
	Content    []byte
	HasContent bool
	IsLast     bool
}

// Status is the terminal outcome reported to the client.
type Status struct {
	Success  bool
	Message  string
	FileName string
}

// OutFrame is one outbound message: either a content block or the status.
type OutFrame struct {
	Content []byte
	Status  *Status
}

// Stream is the transport seen by a session.
//
//counterfeiter:generate . Stream
type Stream interface {
	// Recv returns io.EOF once the peer has half-closed.
	Recv() (*Frame, error)
	Send(*OutFrame) error
	Context() context.Context
}

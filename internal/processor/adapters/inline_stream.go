package adapters

import (
	"bytes"
	"context"
	"io"

	"fileproc/internal/processor/domain"
)

// InlineStream presents a whole file held in memory as a domain Stream: one
// metadata frame, one final content frame, then EOF. Everything the session
// sends is collected for a single unary response.
type InlineStream struct {
	ctx    context.Context
	frames []*domain.Frame
	output bytes.Buffer
	status *domain.Status
}

func NewInlineStream(ctx context.Context, md domain.RawMetadata, content []byte) *InlineStream {
	return &InlineStream{
		ctx: ctx,
		frames: []*domain.Frame{
			{Metadata: &md},
			{Content: content, HasContent: true, IsLast: true},
		},
	}
}

func (s *InlineStream) Recv() (*domain.Frame, error) {
	if err := s.ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.frames) == 0 {
		return nil, io.EOF
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f, nil
}

func (s *InlineStream) Send(frame *domain.OutFrame) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	if frame.Status != nil {
		status := *frame.Status
		s.status = &status
		return nil
	}
	s.output.Write(frame.Content)
	return nil
}

func (s *InlineStream) Context() context.Context {
	return s.ctx
}

// Output returns the content received so far.
func (s *InlineStream) Output() []byte {
	return s.output.Bytes()
}

// Status returns the status frame, or nil if none was sent.
func (s *InlineStream) Status() *domain.Status {
	return s.status
}

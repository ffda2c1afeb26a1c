package framing

import (
	"context"
	"fmt"
	"io"

	"fileproc/internal/processor/domain"
	_errors "fileproc/pkg/errors"
)

const DefaultChunkSize = 64 * 1024

// Sender is the outbound half of a session stream.
type Sender interface {
	Send(*domain.OutFrame) error
}

// SendContent streams r to the peer in blocks of chunkSize bytes, one
// content frame per block. It stops at the first failed send.
func SendContent(ctx context.Context, stream Sender, op domain.Operation, r io.Reader, chunkSize int) (int64, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	buf := make([]byte, chunkSize)
	var sent int64
	for {
		if err := ctx.Err(); err != nil {
			return sent, domain.NewSessionError(domain.KindPeerDisconnected, op, "stream cancelled",
				fmt.Errorf("%w: %w", _errors.ErrStreamCancelled, err))
		}

		n, readErr := io.ReadFull(r, buf)
		if n > 0 {
			block := make([]byte, n)
			copy(block, buf[:n])
			if err := stream.Send(&domain.OutFrame{Content: block}); err != nil {
				return sent, domain.NewSessionError(domain.KindPeerDisconnected, op, "failed to send content", err)
			}
			sent += int64(n)
		}

		switch readErr {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			return sent, nil
		default:
			return sent, domain.NewSessionError(domain.KindIOError, op, "failed to read output", readErr)
		}
	}
}

// SendStatus emits the terminal status frame.
func SendStatus(stream Sender, op domain.Operation, status domain.Status) error {
	if err := stream.Send(&domain.OutFrame{Status: &status}); err != nil {
		return domain.NewSessionError(domain.KindPeerDisconnected, op, "failed to send status", err)
	}
	return nil
}

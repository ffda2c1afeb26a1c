package adapters

import (
	"context"

	pb "fileproc/api/gen"
	"fileproc/internal/processor/domain"
	"fileproc/internal/processor/mappers"

	"google.golang.org/grpc"
)

// FileStream is the server side of every streaming FileProcessorService call.
type FileStream = grpc.BidiStreamingServer[pb.FileChunk, pb.ProcessResponse]

// GrpcStreamAdapter adapts a gRPC stream to the domain Stream
type GrpcStreamAdapter struct {
	stream FileStream
}

func NewGrpcStreamAdapter(stream FileStream) domain.Stream {
	return &GrpcStreamAdapter{stream: stream}
}

// Recv passes io.EOF through unchanged so a half-close ends the upload.
func (a *GrpcStreamAdapter) Recv() (*domain.Frame, error) {
	chunk, err := a.stream.Recv()
	if err != nil {
		return nil, err
	}
	return mappers.ProtobufToFrame(chunk), nil
}

func (a *GrpcStreamAdapter) Send(frame *domain.OutFrame) error {
	return a.stream.Send(mappers.OutFrameToProtobuf(frame))
}

func (a *GrpcStreamAdapter) Context() context.Context {
	return a.stream.Context()
}

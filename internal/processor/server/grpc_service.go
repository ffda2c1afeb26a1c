package server

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"
	"errors"

	pb "fileproc/api/gen"
	"fileproc/internal/processor/adapters"
	"fileproc/internal/processor/domain"
	"fileproc/internal/processor/mappers"
	_errors "fileproc/pkg/errors"
	"fileproc/pkg/logger"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Processor runs one session over a stream.
//
//counterfeiter:generate . Processor
type Processor interface {
	Run(stream domain.Stream, op domain.Operation) (*domain.Session, error)
}

// RejectionObserver is told when the session limit turns a call away.
type RejectionObserver interface {
	SessionRejected()
}

type FileProcessorServer struct {
	pb.UnimplementedFileProcessorServiceServer
	processor Processor
	slots     chan struct{}
	rejected  RejectionObserver
	logger    *logger.Logger
}

// NewFileProcessorServer creates the service. maxSessions <= 0 means no
// limit; rejected may be nil.
func NewFileProcessorServer(processor Processor, maxSessions int, rejected RejectionObserver) *FileProcessorServer {
	s := &FileProcessorServer{
		processor: processor,
		rejected:  rejected,
		logger:    logger.WithField("component", "grpc-service"),
	}
	if maxSessions > 0 {
		s.slots = make(chan struct{}, maxSessions)
	}
	return s
}

func (s *FileProcessorServer) CompressPDF(stream pb.FileProcessorService_CompressPDFServer) error {
	return s.serve(stream, domain.OpCompressPDF)
}

func (s *FileProcessorServer) ConvertToText(stream pb.FileProcessorService_ConvertToTextServer) error {
	return s.serve(stream, domain.OpConvertToText)
}

func (s *FileProcessorServer) ConvertImageFormat(stream pb.FileProcessorService_ConvertImageFormatServer) error {
	return s.serve(stream, domain.OpConvertImageFormat)
}

func (s *FileProcessorServer) ResizeImage(stream pb.FileProcessorService_ResizeImageServer) error {
	return s.serve(stream, domain.OpResizeImage)
}

// CompressPDFInline runs a compression session over the whole file carried
// in the request.
func (s *FileProcessorServer) CompressPDFInline(ctx context.Context, req *pb.FileRequest) (*pb.FileResponse, error) {
	log := s.logger.WithFields("operation", "CompressPDFInline", "file", req.GetFileName(), "size", len(req.GetFileContent()))
	log.Debug("inline request received")

	release, err := s.acquire(domain.OpCompressPDF)
	if err != nil {
		log.Warn("inline request rejected", "error", err)
		return nil, err
	}
	defer release()

	stream := adapters.NewInlineStream(ctx, domain.RawMetadata{FileName: req.GetFileName()}, req.GetFileContent())
	if _, err := s.processor.Run(stream, domain.OpCompressPDF); err != nil {
		return nil, toStatusError(err)
	}

	return mappers.InlineResponse(stream.Status(), stream.Output()), nil
}

func (s *FileProcessorServer) serve(stream adapters.FileStream, op domain.Operation) error {
	log := s.logger.WithField("operation", op)

	release, err := s.acquire(op)
	if err != nil {
		log.Warn("stream rejected", "error", err)
		return err
	}
	defer release()

	if _, err := s.processor.Run(adapters.NewGrpcStreamAdapter(stream), op); err != nil {
		return toStatusError(err)
	}
	return nil
}

// acquire takes a session slot without waiting.
func (s *FileProcessorServer) acquire(op domain.Operation) (func(), error) {
	if s.slots == nil {
		return func() {}, nil
	}
	select {
	case s.slots <- struct{}{}:
		return func() { <-s.slots }, nil
	default:
		if s.rejected != nil {
			s.rejected.SessionRejected()
		}
		return nil, status.Errorf(codes.ResourceExhausted, "%s: %v (limit %d)", op, _errors.ErrTooManySessions, cap(s.slots))
	}
}

// toStatusError maps a session error that escaped to the transport onto a
// gRPC status.
func toStatusError(err error) error {
	var se *domain.SessionError
	if errors.As(err, &se) && se.Kind == domain.KindInvalidMetadata {
		return status.Error(codes.InvalidArgument, se.Message())
	}
	return status.Error(codes.Internal, err.Error())
}

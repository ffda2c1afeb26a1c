package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"os"

	pb "fileproc/api/gen"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

const DefaultChunkSize = 64 * 1024

// TLSOptions enables mutual TLS. A nil *TLSOptions means a plaintext
// connection.
type TLSOptions struct {
	CertPath   string
	KeyPath    string
	CACertPath string
	ServerName string
}

type Options struct {
	ServerAddr string
	ChunkSize  int
	TLS        *TLSOptions
}

// ProcessingError is a failure the server reported in a status frame.
type ProcessingError struct {
	Message string
}

func (e *ProcessingError) Error() string {
	return "processing failed: " + e.Message
}

// Result describes a finished transformation.
type Result struct {
	FileName      string
	Message       string
	BytesSent     int64
	BytesReceived int64
}

type FileProcessorClient struct {
	client    pb.FileProcessorServiceClient
	conn      *grpc.ClientConn
	chunkSize int
}

func NewFileProcessorClient(opts Options) (*FileProcessorClient, error) {
	creds := insecure.NewCredentials()
	if opts.TLS != nil {
		tlsConfig, err := clientTLSConfig(opts.TLS)
		if err != nil {
			return nil, err
		}
		creds = credentials.NewTLS(tlsConfig)
	}

	conn, err := grpc.NewClient(
		opts.ServerAddr,
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.WaitForReady(true)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	c := NewFromConn(conn, opts.ChunkSize)
	c.conn = conn
	return c, nil
}

// NewFromConn wraps an existing connection, which the caller keeps owning.
func NewFromConn(conn grpc.ClientConnInterface, chunkSize int) *FileProcessorClient {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &FileProcessorClient{
		client:    pb.NewFileProcessorServiceClient(conn),
		chunkSize: chunkSize,
	}
}

func clientTLSConfig(opts *TLSOptions) (*tls.Config, error) {
	clientCert, err := tls.LoadX509KeyPair(opts.CertPath, opts.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load client cert/key: %w", err)
	}

	caCert, err := os.ReadFile(opts.CACertPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	certPool := x509.NewCertPool()
	if ok := certPool.AppendCertsFromPEM(caCert); !ok {
		return nil, fmt.Errorf("failed to add CA certificate to pool")
	}

	return &tls.Config{
		Certificates: []tls.Certificate{clientCert},
		RootCAs:      certPool,
		MinVersion:   tls.VersionTLS13,
		ServerName:   opts.ServerName,
	}, nil
}

func (c *FileProcessorClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *FileProcessorClient) CompressPDF(ctx context.Context, fileName string, in io.Reader, out io.Writer) (*Result, error) {
	return c.process(ctx, c.client.CompressPDF, &pb.FileMetadata{FileName: fileName}, in, out)
}

func (c *FileProcessorClient) ConvertToText(ctx context.Context, fileName string, in io.Reader, out io.Writer) (*Result, error) {
	return c.process(ctx, c.client.ConvertToText, &pb.FileMetadata{FileName: fileName}, in, out)
}

func (c *FileProcessorClient) ConvertImageFormat(ctx context.Context, fileName, format string, in io.Reader, out io.Writer) (*Result, error) {
	md := &pb.FileMetadata{FileName: fileName, OutputFormat: format}
	return c.process(ctx, c.client.ConvertImageFormat, md, in, out)
}

func (c *FileProcessorClient) ResizeImage(ctx context.Context, fileName string, width, height int32, in io.Reader, out io.Writer) (*Result, error) {
	md := &pb.FileMetadata{FileName: fileName, Width: proto.Int32(width), Height: proto.Int32(height)}
	return c.process(ctx, c.client.ResizeImage, md, in, out)
}

// CompressPDFInline sends the whole file in one request. The file must fit
// in the server's maximum message size.
func (c *FileProcessorClient) CompressPDFInline(ctx context.Context, fileName string, content []byte) (*Result, []byte, error) {
	resp, err := c.client.CompressPDFInline(ctx, &pb.FileRequest{FileName: fileName, FileContent: content})
	if err != nil {
		return nil, nil, describe(err)
	}
	if !resp.GetSuccess() {
		return nil, nil, &ProcessingError{Message: resp.GetStatusMessage()}
	}
	return &Result{
		FileName:      resp.GetFileName(),
		Message:       resp.GetStatusMessage(),
		BytesSent:     int64(len(content)),
		BytesReceived: int64(len(resp.GetFileContent())),
	}, resp.GetFileContent(), nil
}

type fileStream = grpc.BidiStreamingClient[pb.FileChunk, pb.ProcessResponse]

type openFunc func(ctx context.Context, opts ...grpc.CallOption) (fileStream, error)

// process uploads and downloads concurrently. The server only answers once
// the upload is complete, but it may end the call early, which the upload
// sees as io.EOF.
func (c *FileProcessorClient) process(ctx context.Context, open openFunc, md *pb.FileMetadata, in io.Reader, out io.Writer) (*Result, error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	stream, err := open(ctx)
	if err != nil {
		return nil, describe(err)
	}

	var (
		result Result
		final  *pb.ProcessStatus
	)

	// The first failure cancels the other half and becomes the reported cause.
	g := new(errgroup.Group)
	g.Go(func() error {
		sent, err := c.upload(stream, md, in)
		result.BytesSent = sent
		if err == io.EOF {
			return nil
		}
		if err != nil {
			cancel(err)
		}
		return err
	})
	g.Go(func() error {
		received, st, err := download(stream, out)
		result.BytesReceived = received
		final = st
		if err != nil {
			cancel(err)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		if cause := context.Cause(ctx); cause != nil {
			err = cause
		}
		return nil, describe(err)
	}
	if final == nil {
		return nil, fmt.Errorf("server closed the stream without a status")
	}
	if !final.GetSuccess() {
		return nil, &ProcessingError{Message: final.GetMessage()}
	}

	result.FileName = final.GetFileName()
	result.Message = final.GetMessage()
	return &result, nil
}

// upload sends the metadata frame and then the content, marking the last
// frame. An empty input is a metadata frame marked last.
func (c *FileProcessorClient) upload(stream fileStream, md *pb.FileMetadata, in io.Reader) (int64, error) {
	buf := make([]byte, c.chunkSize)
	n, eof, err := readBlock(in, buf)
	if err != nil {
		return 0, err
	}

	first := &pb.FileChunk{Payload: &pb.FileChunk_Metadata{Metadata: md}, IsLast: n == 0}
	if err := stream.Send(first); err != nil {
		return 0, err
	}

	var sent int64
	for n > 0 {
		block := make([]byte, n)
		copy(block, buf[:n])

		n = 0
		if !eof {
			if n, eof, err = readBlock(in, buf); err != nil {
				return sent, err
			}
		}

		chunk := &pb.FileChunk{Payload: &pb.FileChunk_Content{Content: block}, IsLast: n == 0}
		if err := stream.Send(chunk); err != nil {
			return sent, err
		}
		sent += int64(len(block))
	}

	return sent, stream.CloseSend()
}

func readBlock(r io.Reader, buf []byte) (n int, eof bool, err error) {
	n, err = io.ReadFull(r, buf)
	switch {
	case err == nil:
		return n, false, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return n, true, nil
	default:
		return n, true, fmt.Errorf("failed to read input: %w", err)
	}
}

func download(stream fileStream, out io.Writer) (int64, *pb.ProcessStatus, error) {
	var (
		received int64
		final    *pb.ProcessStatus
	)
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return received, final, nil
		}
		if err != nil {
			return received, final, err
		}

		if st := resp.GetStatus(); st != nil {
			final = st
			continue
		}
		n, err := out.Write(resp.GetContent())
		received += int64(n)
		if err != nil {
			return received, final, fmt.Errorf("failed to write output: %w", err)
		}
	}
}

// describe turns gRPC status errors into messages fit for a terminal.
func describe(err error) error {
	s, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch s.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("request rejected: %w", err)
	case codes.ResourceExhausted:
		return fmt.Errorf("server busy: %w", err)
	case codes.DeadlineExceeded:
		return fmt.Errorf("timeout, the server may still be processing the request: %w", err)
	case codes.Unavailable:
		return fmt.Errorf("server unavailable: %w", err)
	}
	return err
}

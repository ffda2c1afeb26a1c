package server_test

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	pb "fileproc/api/gen"
	"fileproc/internal/processor/core/command"
	"fileproc/internal/processor/core/runner"
	"fileproc/internal/processor/core/runner/runnerfakes"
	"fileproc/internal/processor/core/scratch"
	"fileproc/internal/processor/core/session"
	"fileproc/internal/processor/domain"
	"fileproc/internal/processor/mappers"
	"fileproc/internal/processor/server"
	"fileproc/internal/processor/server/serverfakes"
	"fileproc/pkg/config"
	"fileproc/pkg/logger"
	"fileproc/pkg/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

func dial(t *testing.T, svc pb.FileProcessorServiceServer) pb.FileProcessorServiceClient {
	t.Helper()

	cfg := config.DefaultConfig
	srv, err := server.NewGRPCServer(&cfg, svc)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewFileProcessorServiceClient(conn)
}

// newController wires a real session controller to a fake converter that
// writes output to whatever path the command names last (or via
// -sOutputFile= for Ghostscript).
func newController(t *testing.T, output []byte) (*session.Controller, *runnerfakes.FakeRunner, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := scratch.NewStore(dir, platform.NewPlatform(), logger.New())
	require.NoError(t, err)

	r := &runnerfakes.FakeRunner{}
	r.RunStub = func(_ context.Context, cmd runner.Command) (runner.Result, error) {
		out := cmd.Args[len(cmd.Args)-1]
		for _, a := range cmd.Args {
			if strings.HasPrefix(a, "-sOutputFile=") {
				out = strings.TrimPrefix(a, "-sOutputFile=")
			}
		}
		return runner.Result{}, os.WriteFile(out, output, 0600)
	}

	c := session.NewController(session.Dependencies{
		Store:   store,
		Runner:  r,
		Builder: command.NewBuilder(command.Tools{}),
	}, 4)
	return c, r, dir
}

func collect(t *testing.T, stream grpc.BidiStreamingClient[pb.FileChunk, pb.ProcessResponse]) ([]byte, *pb.ProcessStatus, error) {
	t.Helper()
	var content []byte
	var st *pb.ProcessStatus
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return content, st, nil
		}
		if err != nil {
			return content, st, err
		}
		if resp.GetStatus() != nil {
			st = resp.GetStatus()
			continue
		}
		content = append(content, resp.GetContent()...)
	}
}

func TestResizeImage_EndToEnd(t *testing.T) {
	controller, r, dir := newController(t, []byte("resized-image"))
	client := dial(t, server.NewFileProcessorServer(controller, 0, nil))

	stream, err := client.ResizeImage(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(mappers.MetadataToProtobuf(domain.RawMetadata{FileName: "cat.png", Width: proto.Int32(32), Height: proto.Int32(0)})))
	require.NoError(t, stream.Send(mappers.ContentToProtobuf([]byte("png-"), false)))
	require.NoError(t, stream.Send(mappers.ContentToProtobuf([]byte("bytes"), false)))
	require.NoError(t, stream.CloseSend())

	content, st, err := collect(t, stream)
	require.NoError(t, err)

	assert.Equal(t, []byte("resized-image"), content)
	require.NotNil(t, st)
	assert.True(t, st.GetSuccess())
	assert.Equal(t, "resized_cat.png", st.GetFileName())

	_, cmd := r.RunArgsForCall(0)
	assert.Contains(t, cmd.Args, "32x0")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConvertToText_InvalidMetadataIsInvalidArgument(t *testing.T) {
	controller, r, _ := newController(t, nil)
	client := dial(t, server.NewFileProcessorServer(controller, 0, nil))

	stream, err := client.ConvertToText(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(mappers.ContentToProtobuf([]byte("not json"), true)))
	require.NoError(t, stream.CloseSend())

	_, st, err := collect(t, stream)
	require.Error(t, err)
	assert.Nil(t, st)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Zero(t, r.RunCallCount())
}

func TestResizeImage_MissingGeometryIsInvalidArgument(t *testing.T) {
	controller, r, dir := newController(t, nil)
	client := dial(t, server.NewFileProcessorServer(controller, 0, nil))

	stream, err := client.ResizeImage(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&pb.FileChunk{Payload: &pb.FileChunk_Metadata{Metadata: &pb.FileMetadata{FileName: "cat.png"}}}))
	require.NoError(t, stream.Send(mappers.ContentToProtobuf([]byte("png"), true)))
	require.NoError(t, stream.CloseSend())

	_, st, err := collect(t, stream)
	require.Error(t, err)
	assert.Nil(t, st)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "missing width")
	assert.Zero(t, r.RunCallCount())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConvertImageFormat_FailureIsStatusFrame(t *testing.T) {
	controller, r, _ := newController(t, nil)
	r.RunReturns(runner.Result{ExitCode: 1, Output: []byte("no decode delegate")}, nil)
	client := dial(t, server.NewFileProcessorServer(controller, 0, nil))

	stream, err := client.ConvertImageFormat(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(mappers.MetadataToProtobuf(domain.RawMetadata{FileName: "a.xyz", OutputFormat: "png"})))
	require.NoError(t, stream.CloseSend())

	content, st, err := collect(t, stream)
	require.NoError(t, err, "transform failures end the call normally")
	assert.Empty(t, content)
	require.NotNil(t, st)
	assert.False(t, st.GetSuccess())
	assert.Equal(t, "no decode delegate", st.GetMessage())
}

func TestCompressPDFInline(t *testing.T) {
	controller, _, _ := newController(t, []byte("small"))
	client := dial(t, server.NewFileProcessorServer(controller, 0, nil))

	resp, err := client.CompressPDFInline(context.Background(), &pb.FileRequest{
		FileName:    "big.pdf",
		FileContent: []byte(strings.Repeat("x", 4096)),
	})
	require.NoError(t, err)
	assert.True(t, resp.GetSuccess())
	assert.Equal(t, "compressed_big.pdf", resp.GetFileName())
	assert.Equal(t, []byte("small"), resp.GetFileContent())

	_, err = client.CompressPDFInline(context.Background(), &pb.FileRequest{FileName: " "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

type rejectionCounter struct{ n atomic.Int32 }

func (r *rejectionCounter) SessionRejected() { r.n.Add(1) }

func TestSessionLimit(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	fake := &serverfakes.FakeProcessor{}
	fake.RunStub = func(stream domain.Stream, op domain.Operation) (*domain.Session, error) {
		close(started)
		<-release
		return domain.NewSession("x", op), nil
	}

	rejections := &rejectionCounter{}
	client := dial(t, server.NewFileProcessorServer(fake, 1, rejections))

	first, err := client.CompressPDF(context.Background())
	require.NoError(t, err)
	require.NoError(t, first.Send(mappers.MetadataToProtobuf(domain.RawMetadata{FileName: "a.pdf"})))
	<-started

	second, err := client.ConvertToText(context.Background())
	require.NoError(t, err)
	_, _, err = collect(t, second)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	_, err = client.CompressPDFInline(context.Background(), &pb.FileRequest{FileName: "b.pdf"})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
	assert.Equal(t, int32(2), rejections.n.Load())

	close(release)
	_, _, err = collect(t, first)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.RunCallCount())
}

func TestProcessorErrorsMapToInternal(t *testing.T) {
	fake := &serverfakes.FakeProcessor{}
	fake.RunReturns(nil, errors.New("boom"))
	client := dial(t, server.NewFileProcessorServer(fake, 0, nil))

	stream, err := client.CompressPDF(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.CloseSend())
	_, _, err = collect(t, stream)
	assert.Equal(t, codes.Internal, status.Code(err))

	_, op := fake.RunArgsForCall(0)
	assert.Equal(t, domain.OpCompressPDF, op)
}

func TestNewGRPCServer_TLSRequiresCertificates(t *testing.T) {
	cfg := config.DefaultConfig
	cfg.Security.TLSEnabled = true
	cfg.Security.ServerCertPath = "/nonexistent/server-cert.pem"
	cfg.Security.ServerKeyPath = "/nonexistent/server-key.pem"

	_, err := server.NewGRPCServer(&cfg, &server.FileProcessorServer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server cert/key")
}

package framing

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"fileproc/internal/processor/domain"
	_errors "fileproc/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

// scriptedStream replays frames, then returns end (io.EOF by default).
type scriptedStream struct {
	frames []*domain.Frame
	end    error
	sent   []*domain.OutFrame
	// failSendAfter makes the n-th Send (0-based) and later ones fail.
	failSendAfter int
}

func (s *scriptedStream) Recv() (*domain.Frame, error) {
	if len(s.frames) == 0 {
		if s.end != nil {
			return nil, s.end
		}
		return nil, io.EOF
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f, nil
}

func (s *scriptedStream) Send(f *domain.OutFrame) error {
	if s.failSendAfter > 0 && len(s.sent) >= s.failSendAfter {
		return errors.New("transport is closing")
	}
	s.sent = append(s.sent, f)
	return nil
}

func md(name string) *domain.Frame {
	return &domain.Frame{Metadata: &domain.RawMetadata{FileName: name}}
}

func content(b string, last bool) *domain.Frame {
	return &domain.Frame{Content: []byte(b), HasContent: true, IsLast: last}
}

func assertKind(t *testing.T, err error, kind domain.ErrorKind) {
	t.Helper()
	got, ok := domain.KindOf(err)
	require.True(t, ok, "expected a session error, got %v", err)
	assert.Equal(t, kind, got)
}

func TestReader_StructuredMetadataAndContent(t *testing.T) {
	stream := &scriptedStream{frames: []*domain.Frame{
		md("a.pdf"),
		content("hello ", false),
		content("", false),
		content("world", true),
		content("ignored", false),
	}}
	r := NewReader(stream, domain.OpCompressPDF)

	meta, err := r.ReadMetadata()
	require.NoError(t, err)
	assert.Equal(t, domain.Metadata{Op: domain.OpCompressPDF, FileName: "a.pdf", Params: domain.NoParams{}}, meta)

	var buf bytes.Buffer
	n, err := r.ReceiveContent(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(11), n)
	assert.Equal(t, "hello world", buf.String())
	assert.Len(t, stream.frames, 1, "nothing read after is_last")
}

func TestReader_EndsOnHalfClose(t *testing.T) {
	stream := &scriptedStream{frames: []*domain.Frame{md("a.pdf"), content("abc", false)}}
	r := NewReader(stream, domain.OpConvertToText)

	_, err := r.ReadMetadata()
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := r.ReceiveContent(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestReader_MetadataOnlyStream(t *testing.T) {
	frame := md("a.png")
	frame.Metadata.Width, frame.Metadata.Height = proto.Int32(10), proto.Int32(10)
	frame.IsLast = true
	// an open stream would block forever if the reader called Recv again
	stream := &scriptedStream{frames: []*domain.Frame{frame}, end: errors.New("must not be called")}
	r := NewReader(stream, domain.OpResizeImage)

	_, err := r.ReadMetadata()
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := r.ReceiveContent(context.Background(), &buf)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReader_ChunkBoundariesDoNotMatter(t *testing.T) {
	payload := bytes.Repeat([]byte("0123456789abcdef"), 1000)

	for _, size := range []int{1, 7, 1024, len(payload)} {
		frames := []*domain.Frame{md("x.pdf")}
		for i := 0; i < len(payload); i += size {
			end := min(i+size, len(payload))
			frames = append(frames, &domain.Frame{Content: payload[i:end], HasContent: true})
		}
		r := NewReader(&scriptedStream{frames: frames}, domain.OpCompressPDF)

		_, err := r.ReadMetadata()
		require.NoError(t, err)

		var buf bytes.Buffer
		_, err = r.ReceiveContent(context.Background(), &buf)
		require.NoError(t, err)
		assert.Equal(t, payload, buf.Bytes(), "chunk size %d", size)
	}
}

func TestReader_LegacyJSONMetadata(t *testing.T) {
	tests := []struct {
		name string
		op   domain.Operation
		json string
		want domain.Metadata
	}{
		{
			name: "compress",
			op:   domain.OpCompressPDF,
			json: `{"file_name":"a.pdf"}`,
			want: domain.Metadata{Op: domain.OpCompressPDF, FileName: "a.pdf", Params: domain.NoParams{}},
		},
		{
			name: "convert",
			op:   domain.OpConvertImageFormat,
			json: `{"file_name":"a.jpg","output_format":"webp"}`,
			want: domain.Metadata{Op: domain.OpConvertImageFormat, FileName: "a.jpg", Params: domain.ConvertParams{Format: "webp"}},
		},
		{
			name: "resize numbers",
			op:   domain.OpResizeImage,
			json: `{"file_name":"a.jpg","width":800,"height":0}`,
			want: domain.Metadata{Op: domain.OpResizeImage, FileName: "a.jpg", Params: domain.ResizeParams{Width: 800, Height: 0}},
		},
		{
			name: "resize numeric strings",
			op:   domain.OpResizeImage,
			json: `{"file_name":"a.jpg","width":"640","height":" 480"}`,
			want: domain.Metadata{Op: domain.OpResizeImage, FileName: "a.jpg", Params: domain.ResizeParams{Width: 640, Height: 480}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := &scriptedStream{frames: []*domain.Frame{content(tt.json, false), content("data", true)}}
			r := NewReader(stream, tt.op)

			meta, err := r.ReadMetadata()
			require.NoError(t, err)
			assert.Equal(t, tt.want, meta)

			var buf bytes.Buffer
			_, err = r.ReceiveContent(context.Background(), &buf)
			require.NoError(t, err)
			assert.Equal(t, "data", buf.String(), "metadata bytes never reach the file")
		})
	}
}

func TestReader_InvalidMetadata(t *testing.T) {
	tests := []struct {
		name  string
		op    domain.Operation
		first *domain.Frame
	}{
		{"empty stream", domain.OpCompressPDF, nil},
		{"no arm", domain.OpCompressPDF, &domain.Frame{}},
		{"not json", domain.OpCompressPDF, content("%PDF-1.4", false)},
		{"json array", domain.OpCompressPDF, content(`["a.pdf"]`, false)},
		{"missing name", domain.OpCompressPDF, md("")},
		{"blank name", domain.OpConvertToText, content(`{"file_name":"  "}`, false)},
		{"name not string", domain.OpConvertToText, content(`{"file_name":7}`, false)},
		{"missing format", domain.OpConvertImageFormat, md("a.jpg")},
		{"missing format json", domain.OpConvertImageFormat, content(`{"file_name":"a.jpg"}`, false)},
		{"unsafe format", domain.OpConvertImageFormat, &domain.Frame{Metadata: &domain.RawMetadata{FileName: "a.jpg", OutputFormat: "png;id"}}},
		{"missing width", domain.OpResizeImage, content(`{"file_name":"a.jpg","height":10}`, false)},
		{"missing height", domain.OpResizeImage, content(`{"file_name":"a.jpg","width":10}`, false)},
		{"non-numeric width", domain.OpResizeImage, content(`{"file_name":"a.jpg","width":"wide","height":10}`, false)},
		{"fractional height", domain.OpResizeImage, content(`{"file_name":"a.jpg","width":10,"height":1.5}`, false)},
		{"negative width", domain.OpResizeImage, &domain.Frame{Metadata: &domain.RawMetadata{FileName: "a.jpg", Width: proto.Int32(-1), Height: proto.Int32(10)}}},
		{"no geometry", domain.OpResizeImage, md("a.jpg")},
		{"no height", domain.OpResizeImage, &domain.Frame{Metadata: &domain.RawMetadata{FileName: "a.jpg", Width: proto.Int32(10)}}},
		{"negative height json", domain.OpResizeImage, content(`{"file_name":"a.jpg","width":10,"height":-5}`, false)},
		{"huge width", domain.OpResizeImage, content(`{"file_name":"a.jpg","width":99999999999,"height":1}`, false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := &scriptedStream{}
			if tt.first != nil {
				stream.frames = []*domain.Frame{tt.first, content("payload", true)}
			}
			r := NewReader(stream, tt.op)

			_, err := r.ReadMetadata()
			require.Error(t, err)
			assertKind(t, err, domain.KindInvalidMetadata)
		})
	}
}

func TestReader_SecondMetadataFrame(t *testing.T) {
	stream := &scriptedStream{frames: []*domain.Frame{md("a.pdf"), content("ab", false), md("b.pdf")}}
	r := NewReader(stream, domain.OpCompressPDF)

	_, err := r.ReadMetadata()
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = r.ReceiveContent(context.Background(), &buf)
	assertKind(t, err, domain.KindInvalidMetadata)
}

func TestReader_ContentBeforeMetadata(t *testing.T) {
	r := NewReader(&scriptedStream{}, domain.OpCompressPDF)
	_, err := r.ReceiveContent(context.Background(), io.Discard)
	assertKind(t, err, domain.KindInvalidMetadata)
}

func TestReader_TransportFailure(t *testing.T) {
	stream := &scriptedStream{frames: []*domain.Frame{md("a.pdf"), content("ab", false)}, end: errors.New("connection reset")}
	r := NewReader(stream, domain.OpCompressPDF)

	_, err := r.ReadMetadata()
	require.NoError(t, err)

	n, err := r.ReceiveContent(context.Background(), io.Discard)
	assertKind(t, err, domain.KindPeerDisconnected)
	assert.Equal(t, int64(2), n)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReader_WriteFailure(t *testing.T) {
	stream := &scriptedStream{frames: []*domain.Frame{md("a.pdf"), content("ab", true)}}
	r := NewReader(stream, domain.OpCompressPDF)

	_, err := r.ReadMetadata()
	require.NoError(t, err)

	_, err = r.ReceiveContent(context.Background(), failingWriter{})
	assertKind(t, err, domain.KindIOError)
}

func TestReader_CancelledContext(t *testing.T) {
	stream := &scriptedStream{frames: []*domain.Frame{md("a.pdf"), content("ab", false)}}
	r := NewReader(stream, domain.OpCompressPDF)
	_, err := r.ReadMetadata()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.ReceiveContent(ctx, io.Discard)
	assertKind(t, err, domain.KindPeerDisconnected)
	assert.ErrorIs(t, err, _errors.ErrStreamCancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSendContent_Blocks(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 10*1024+3)
	stream := &scriptedStream{}

	n, err := SendContent(context.Background(), stream, domain.OpCompressPDF, bytes.NewReader(payload), 1024)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
	require.Len(t, stream.sent, 11)

	var got []byte
	for i, f := range stream.sent {
		assert.Nil(t, f.Status)
		if i < 10 {
			assert.Len(t, f.Content, 1024)
		}
		got = append(got, f.Content...)
	}
	assert.Len(t, stream.sent[10].Content, 3)
	assert.Equal(t, payload, got)
}

func TestSendContent_ShortReadsStillFillBlocks(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 100)
	stream := &scriptedStream{}

	_, err := SendContent(context.Background(), stream, domain.OpCompressPDF, iotest.OneByteReader(bytes.NewReader(payload)), 40)
	require.NoError(t, err)
	require.Len(t, stream.sent, 3)
	assert.Len(t, stream.sent[0].Content, 40)
	assert.Len(t, stream.sent[2].Content, 20)
}

func TestSendContent_EmptyInput(t *testing.T) {
	stream := &scriptedStream{}
	n, err := SendContent(context.Background(), stream, domain.OpCompressPDF, bytes.NewReader(nil), 0)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, stream.sent)
}

func TestSendContent_StopsAtFirstSendFailure(t *testing.T) {
	stream := &scriptedStream{failSendAfter: 2}

	n, err := SendContent(context.Background(), stream, domain.OpCompressPDF, bytes.NewReader(make([]byte, 5000)), 1000)
	assertKind(t, err, domain.KindPeerDisconnected)
	assert.Equal(t, int64(2000), n)
	assert.Len(t, stream.sent, 2)
}

func TestSendContent_ReadFailure(t *testing.T) {
	_, err := SendContent(context.Background(), &scriptedStream{}, domain.OpCompressPDF, iotest.ErrReader(errors.New("EIO")), 10)
	assertKind(t, err, domain.KindIOError)
}

func TestSendStatus(t *testing.T) {
	stream := &scriptedStream{}
	require.NoError(t, SendStatus(stream, domain.OpCompressPDF, domain.Status{Success: true, FileName: "compressed_a.pdf"}))
	require.Len(t, stream.sent, 1)
	assert.Equal(t, &domain.Status{Success: true, FileName: "compressed_a.pdf"}, stream.sent[0].Status)

	failing := &scriptedStream{failSendAfter: 1, sent: []*domain.OutFrame{{}}}
	assertKind(t, SendStatus(failing, domain.OpCompressPDF, domain.Status{}), domain.KindPeerDisconnected)
}

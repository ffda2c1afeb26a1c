package mappers

import (
	"testing"

	pb "fileproc/api/gen"
	"fileproc/internal/processor/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestProtobufToFrame_Metadata(t *testing.T) {
	chunk := MetadataToProtobuf(domain.RawMetadata{FileName: "a.png", OutputFormat: "jpg", Width: proto.Int32(10), Height: proto.Int32(0)})
	chunk.IsLast = true

	frame := ProtobufToFrame(chunk)

	assert.Equal(t, &domain.RawMetadata{FileName: "a.png", OutputFormat: "jpg", Width: proto.Int32(10), Height: proto.Int32(0)}, frame.Metadata)
	assert.False(t, frame.HasContent)
	assert.True(t, frame.IsLast)
}

func TestProtobufToFrame_GeometryPresence(t *testing.T) {
	frame := ProtobufToFrame(&pb.FileChunk{Payload: &pb.FileChunk_Metadata{Metadata: &pb.FileMetadata{FileName: "a.png"}}})
	assert.Nil(t, frame.Metadata.Width)
	assert.Nil(t, frame.Metadata.Height)

	// an explicit zero survives the wire
	data, err := proto.Marshal(&pb.FileChunk{Payload: &pb.FileChunk_Metadata{Metadata: &pb.FileMetadata{FileName: "a.png", Width: proto.Int32(0), Height: proto.Int32(0)}}})
	require.NoError(t, err)
	var decoded pb.FileChunk
	require.NoError(t, proto.Unmarshal(data, &decoded))

	frame = ProtobufToFrame(&decoded)
	require.NotNil(t, frame.Metadata.Width)
	require.NotNil(t, frame.Metadata.Height)
	assert.Equal(t, int32(0), *frame.Metadata.Width)
	assert.Equal(t, int32(0), *frame.Metadata.Height)

	undecoded, err := proto.Marshal(&pb.FileChunk{Payload: &pb.FileChunk_Metadata{Metadata: &pb.FileMetadata{FileName: "a.png"}}})
	require.NoError(t, err)
	var absent pb.FileChunk
	require.NoError(t, proto.Unmarshal(undecoded, &absent))
	assert.Nil(t, ProtobufToFrame(&absent).Metadata.Width)
}

func TestProtobufToFrame_Content(t *testing.T) {
	frame := ProtobufToFrame(ContentToProtobuf([]byte("abc"), false))
	assert.Nil(t, frame.Metadata)
	assert.True(t, frame.HasContent)
	assert.Equal(t, []byte("abc"), frame.Content)
	assert.False(t, frame.IsLast)

	// an empty content arm is still a content arm
	frame = ProtobufToFrame(ContentToProtobuf(nil, true))
	assert.True(t, frame.HasContent)
	assert.True(t, frame.IsLast)
}

func TestProtobufToFrame_NoPayload(t *testing.T) {
	frame := ProtobufToFrame(&pb.FileChunk{IsLast: true})
	assert.Nil(t, frame.Metadata)
	assert.False(t, frame.HasContent)
	assert.True(t, frame.IsLast)
}

func TestOutFrameToProtobuf(t *testing.T) {
	resp := OutFrameToProtobuf(&domain.OutFrame{Content: []byte("x")})
	assert.Equal(t, []byte("x"), resp.GetContent())
	assert.Nil(t, resp.GetStatus())

	resp = OutFrameToProtobuf(&domain.OutFrame{Status: &domain.Status{Success: true, Message: "ok", FileName: "f"}})
	assert.Nil(t, resp.GetContent())
	assert.Equal(t, domain.Status{Success: true, Message: "ok", FileName: "f"}, ProtobufToStatus(resp.GetStatus()))
}

func TestInlineResponse(t *testing.T) {
	ok := InlineResponse(&domain.Status{Success: true, Message: "done", FileName: "compressed_a.pdf"}, []byte("pdf"))
	assert.True(t, ok.GetSuccess())
	assert.Equal(t, "compressed_a.pdf", ok.GetFileName())
	assert.Equal(t, []byte("pdf"), ok.GetFileContent())

	failed := InlineResponse(&domain.Status{Success: false, Message: "gs failed"}, []byte("partial"))
	assert.False(t, failed.GetSuccess())
	assert.Equal(t, "gs failed", failed.GetStatusMessage())
	assert.Empty(t, failed.GetFileContent())

	assert.False(t, InlineResponse(nil, nil).GetSuccess())
}

package mappers

import (
	pb "fileproc/api/gen"
	"fileproc/internal/processor/domain"

	"google.golang.org/protobuf/proto"
)

// ProtobufToFrame converts an inbound FileChunk to a domain Frame
func ProtobufToFrame(chunk *pb.FileChunk) *domain.Frame {
	frame := &domain.Frame{IsLast: chunk.GetIsLast()}

	switch p := chunk.GetPayload().(type) {
	case *pb.FileChunk_Metadata:
		md := p.Metadata
		frame.Metadata = &domain.RawMetadata{
			FileName:     md.GetFileName(),
			OutputFormat: md.GetOutputFormat(),
			Width:        cloneInt32(md.Width),
			Height:       cloneInt32(md.Height),
		}
	case *pb.FileChunk_Content:
		frame.Content = p.Content
		frame.HasContent = true
	}

	return frame
}

// OutFrameToProtobuf converts an outbound domain frame to a ProcessResponse
func OutFrameToProtobuf(frame *domain.OutFrame) *pb.ProcessResponse {
	if frame.Status != nil {
		return &pb.ProcessResponse{
			Payload: &pb.ProcessResponse_Status{Status: StatusToProtobuf(frame.Status)},
		}
	}
	return &pb.ProcessResponse{
		Payload: &pb.ProcessResponse_Content{Content: frame.Content},
	}
}

// StatusToProtobuf converts a domain Status to ProcessStatus
func StatusToProtobuf(status *domain.Status) *pb.ProcessStatus {
	return &pb.ProcessStatus{
		Success:  status.Success,
		Message:  status.Message,
		FileName: status.FileName,
	}
}

// ProtobufToStatus converts a ProcessStatus to a domain Status
func ProtobufToStatus(status *pb.ProcessStatus) domain.Status {
	return domain.Status{
		Success:  status.GetSuccess(),
		Message:  status.GetMessage(),
		FileName: status.GetFileName(),
	}
}

// MetadataToProtobuf builds the first chunk of an upload
func MetadataToProtobuf(md domain.RawMetadata) *pb.FileChunk {
	return &pb.FileChunk{
		Payload: &pb.FileChunk_Metadata{Metadata: &pb.FileMetadata{
			FileName:     md.FileName,
			OutputFormat: md.OutputFormat,
			Width:        cloneInt32(md.Width),
			Height:       cloneInt32(md.Height),
		}},
	}
}

// ContentToProtobuf builds a content chunk of an upload
func ContentToProtobuf(content []byte, isLast bool) *pb.FileChunk {
	return &pb.FileChunk{
		Payload: &pb.FileChunk_Content{Content: content},
		IsLast:  isLast,
	}
}

// InlineResponse converts the result of an inline session to a FileResponse.
// A nil status means the session produced none.
func InlineResponse(status *domain.Status, content []byte) *pb.FileResponse {
	if status == nil {
		return &pb.FileResponse{Success: false, StatusMessage: "no result produced"}
	}
	resp := &pb.FileResponse{
		Success:       status.Success,
		StatusMessage: status.Message,
		FileName:      status.FileName,
	}
	if status.Success {
		resp.FileContent = content
	}
	return resp
}

// cloneInt32 copies an optional field so frames never alias wire messages.
func cloneInt32(v *int32) *int32 {
	if v == nil {
		return nil
	}
	return proto.Int32(*v)
}

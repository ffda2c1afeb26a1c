package framing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"fileproc/internal/processor/core/command"
	"fileproc/internal/processor/domain"
	_errors "fileproc/pkg/errors"
)

// Receiver is the inbound half of a session stream.
type Receiver interface {
	Recv() (*domain.Frame, error)
}

// Reader decodes one inbound stream: a metadata frame followed by content
// frames. It is not safe for concurrent use.
type Reader struct {
	stream Receiver
	op     domain.Operation
	gotMD  bool
	ended  bool
}

func NewReader(stream Receiver, op domain.Operation) *Reader {
	return &Reader{stream: stream, op: op}
}

// ReadMetadata reads and validates the first frame. The structured
// metadata arm is preferred; a JSON object in the first content frame is
// accepted for older clients.
func (r *Reader) ReadMetadata() (domain.Metadata, error) {
	if r.gotMD {
		return domain.Metadata{}, domain.InvalidMetadata(r.op, "metadata already read")
	}

	frame, err := r.stream.Recv()
	if err == io.EOF {
		return domain.Metadata{}, domain.InvalidMetadata(r.op, "stream closed before metadata")
	}
	if err != nil {
		return domain.Metadata{}, domain.NewSessionError(domain.KindPeerDisconnected, r.op, "failed to receive metadata", err)
	}
	r.gotMD = true
	r.ended = frame.IsLast

	switch {
	case frame.Metadata != nil:
		return r.fromStructured(frame.Metadata)
	case frame.HasContent:
		return r.fromJSON(frame.Content)
	default:
		return domain.Metadata{}, domain.InvalidMetadata(r.op, "first frame carries no metadata")
	}
}

// ReceiveContent appends every content payload to w, in arrival order,
// until a frame marked last or the peer half-closes. It returns the number
// of bytes written.
func (r *Reader) ReceiveContent(ctx context.Context, w io.Writer) (int64, error) {
	if !r.gotMD {
		return 0, domain.InvalidMetadata(r.op, "content before metadata")
	}

	var written int64
	for !r.ended {
		if err := ctx.Err(); err != nil {
			return written, domain.NewSessionError(domain.KindPeerDisconnected, r.op, "stream cancelled",
				fmt.Errorf("%w: %w", _errors.ErrStreamCancelled, err))
		}

		frame, err := r.stream.Recv()
		if err == io.EOF {
			r.ended = true
			break
		}
		if err != nil {
			return written, domain.NewSessionError(domain.KindPeerDisconnected, r.op, "failed to receive content", err)
		}

		if frame.Metadata != nil {
			return written, domain.InvalidMetadata(r.op, "unexpected metadata frame after %d bytes", written)
		}

		if len(frame.Content) > 0 {
			n, err := w.Write(frame.Content)
			written += int64(n)
			if err != nil {
				return written, domain.NewSessionError(domain.KindIOError, r.op, "failed to write input", err)
			}
		}
		r.ended = frame.IsLast
	}

	return written, nil
}

func (r *Reader) fromStructured(raw *domain.RawMetadata) (domain.Metadata, error) {
	var width, height int64
	if r.op == domain.OpResizeImage {
		if raw.Width == nil {
			return domain.Metadata{}, domain.InvalidMetadata(r.op, "missing width")
		}
		if raw.Height == nil {
			return domain.Metadata{}, domain.InvalidMetadata(r.op, "missing height")
		}
		width, height = int64(*raw.Width), int64(*raw.Height)
	}
	return r.validate(raw.FileName, raw.OutputFormat, width, height)
}

func (r *Reader) fromJSON(content []byte) (domain.Metadata, error) {
	var fields map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return domain.Metadata{}, domain.InvalidMetadata(r.op, "metadata is not a JSON object: %v", err)
	}

	fileName, err := jsonString(fields, "file_name")
	if err != nil {
		return domain.Metadata{}, domain.InvalidMetadata(r.op, "%v", err)
	}

	var (
		format        string
		width, height int64
	)
	switch r.op {
	case domain.OpConvertImageFormat:
		if format, err = jsonString(fields, "output_format"); err != nil {
			return domain.Metadata{}, domain.InvalidMetadata(r.op, "%v", err)
		}
	case domain.OpResizeImage:
		if _, ok := fields["width"]; !ok {
			return domain.Metadata{}, domain.InvalidMetadata(r.op, "missing width")
		}
		if _, ok := fields["height"]; !ok {
			return domain.Metadata{}, domain.InvalidMetadata(r.op, "missing height")
		}
		if width, err = jsonInt(fields, "width"); err != nil {
			return domain.Metadata{}, domain.InvalidMetadata(r.op, "%v", err)
		}
		if height, err = jsonInt(fields, "height"); err != nil {
			return domain.Metadata{}, domain.InvalidMetadata(r.op, "%v", err)
		}
	}

	return r.validate(fileName, format, width, height)
}

func (r *Reader) validate(fileName, format string, width, height int64) (domain.Metadata, error) {
	if strings.TrimSpace(fileName) == "" {
		return domain.Metadata{}, domain.InvalidMetadata(r.op, "missing file_name")
	}

	md := domain.Metadata{Op: r.op, FileName: fileName, Params: domain.NoParams{}}

	switch r.op {
	case domain.OpCompressPDF, domain.OpConvertToText:
	case domain.OpConvertImageFormat:
		if format == "" {
			return domain.Metadata{}, domain.InvalidMetadata(r.op, "missing output_format")
		}
		if err := command.ValidateFormat(format); err != nil {
			return domain.Metadata{}, domain.InvalidMetadata(r.op, "%v", err)
		}
		md.Params = domain.ConvertParams{Format: format}
	case domain.OpResizeImage:
		if width < 0 || height < 0 {
			return domain.Metadata{}, domain.InvalidMetadata(r.op, "negative geometry %dx%d", width, height)
		}
		if width > math.MaxInt32 || height > math.MaxInt32 {
			return domain.Metadata{}, domain.InvalidMetadata(r.op, "geometry %dx%d out of range", width, height)
		}
		md.Params = domain.ResizeParams{Width: int32(width), Height: int32(height)}
	default:
		return domain.Metadata{}, domain.InvalidMetadata(r.op, "unknown operation")
	}

	return md, nil
}

func jsonString(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("missing %s", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

// jsonInt accepts a JSON integer or a string holding one.
func jsonInt(fields map[string]json.RawMessage, key string) (int64, error) {
	raw := fields[key]

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		n, err := strconv.ParseInt(num.String(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		return n, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("%s must be numeric", key)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be numeric, got %q", key, s)
	}
	return n, nil
}

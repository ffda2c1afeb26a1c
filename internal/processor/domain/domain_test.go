package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("resizeimage")
	assert.NoError(t, err)
	assert.Equal(t, OpResizeImage, op)

	_, err = ParseOperation("Rotate")
	assert.Error(t, err)
	assert.False(t, Operation("Rotate").IsValid())
	assert.Len(t, Operations(), 4)
}

func TestMetadata_Accessors(t *testing.T) {
	convert := Metadata{Op: OpConvertImageFormat, FileName: "a.jpg", Params: ConvertParams{Format: "png"}}
	assert.Equal(t, "png", convert.Format())
	_, _, ok := convert.Geometry()
	assert.False(t, ok)
	assert.Equal(t, "ConvertImageFormat(a.jpg -> png)", convert.String())

	resize := Metadata{Op: OpResizeImage, FileName: "a.jpg", Params: ResizeParams{Width: 800, Height: 0}}
	w, h, ok := resize.Geometry()
	assert.True(t, ok)
	assert.Equal(t, int32(800), w)
	assert.Equal(t, int32(0), h)
	assert.Empty(t, resize.Format())
}

func TestSessionState_Transitions(t *testing.T) {
	s := NewSession("id", OpCompressPDF)
	assert.Equal(t, StateReceiving, s.State)

	assert.Error(t, s.Transition(StateSending))
	assert.NoError(t, s.Transition(StateTransforming))
	assert.NoError(t, s.Transition(StateSending))
	assert.NoError(t, s.Transition(StateDone))
	assert.False(t, s.EndTime.IsZero())

	// terminal states are final
	assert.Error(t, s.Transition(StateFailed))

	for _, from := range []SessionState{StateReceiving, StateTransforming, StateSending} {
		assert.True(t, from.CanTransition(StateFailed), from)
	}
	assert.False(t, StateFailed.CanTransition(StateDone))
}

func TestSession_Paths(t *testing.T) {
	s := NewSession("id", OpCompressPDF)
	assert.Empty(t, s.Paths())

	s.InputPath = "/tmp/in"
	assert.Equal(t, []string{"/tmp/in"}, s.Paths())

	s.OutputPath = "/tmp/out"
	assert.Equal(t, []string{"/tmp/in", "/tmp/out"}, s.Paths())
}

func TestSessionError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := fmt.Errorf("wrapped: %w", NewSessionError(KindTransformFailed, OpResizeImage, "bad geometry", cause))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindTransformFailed, kind)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, &SessionError{Kind: KindTransformFailed})
	assert.NotErrorIs(t, err, &SessionError{Kind: KindTimeout})
	assert.NotErrorIs(t, err, &SessionError{Kind: KindTransformFailed, Op: OpCompressPDF})

	var se *SessionError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, "bad geometry", se.Message())
	assert.Equal(t, "ResizeImage: TransformFailed: bad geometry: exit status 1", se.Error())

	_, ok = KindOf(cause)
	assert.False(t, ok)
}

func TestSessionError_MessageFallbacks(t *testing.T) {
	assert.Equal(t, "boom", (&SessionError{Kind: KindIOError, Err: errors.New("boom")}).Message())
	assert.Equal(t, "Timeout", (&SessionError{Kind: KindTimeout}).Message())
	assert.Equal(t, "CompressPDF: InvalidMetadata: missing file_name",
		InvalidMetadata(OpCompressPDF, "missing %s", "file_name").Error())
}

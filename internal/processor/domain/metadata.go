package domain

import "fmt"

// Params is the operation-specific half of Metadata. Exactly one of the
// concrete types below is used per operation.
type Params interface {
	isParams()
}

// NoParams is used by CompressPDF and ConvertToText.
type NoParams struct{}

// ConvertParams carries the target extension for ConvertImageFormat.
type ConvertParams struct {
	Format string
}

// ResizeParams carries the target geometry for ResizeImage. Zero is kept
// as-is and left to the converter to interpret.
type ResizeParams struct {
	Width  int32
	Height int32
}

func (NoParams) isParams()      {}
func (ConvertParams) isParams() {}
func (ResizeParams) isParams()  {}

// Metadata is the validated first frame of a session.
type Metadata struct {
	Op       Operation
	FileName string
	Params   Params
}

// Format returns the conversion target, or "" for other operations.
func (m Metadata) Format() string {
	if p, ok := m.Params.(ConvertParams); ok {
		return p.Format
	}
	return ""
}

// Geometry returns the resize target and whether the params carry one.
func (m Metadata) Geometry() (width, height int32, ok bool) {
	if p, ok := m.Params.(ResizeParams); ok {
		return p.Width, p.Height, true
	}
	return 0, 0, false
}

func (m Metadata) String() string {
	switch p := m.Params.(type) {
	case ConvertParams:
		return fmt.Sprintf("%s(%s -> %s)", m.Op, m.FileName, p.Format)
	case ResizeParams:
		return fmt.Sprintf("%s(%s %dx%d)", m.Op, m.FileName, p.Width, p.Height)
	default:
		return fmt.Sprintf("%s(%s)", m.Op, m.FileName)
	}
}

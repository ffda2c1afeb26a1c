package command

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"fileproc/internal/processor/core/runner"
	"fileproc/internal/processor/core/scratch"
	"fileproc/internal/processor/domain"
	"fileproc/pkg/errors"
)

var formatPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,10}$`)

// Tools names the converter binaries.
type Tools struct {
	Ghostscript string
	PDFToText   string
	ImageMagick string
}

func DefaultTools() Tools {
	return Tools{
		Ghostscript: "gs",
		PDFToText:   "pdftotext",
		ImageMagick: "convert",
	}
}

// Builder turns validated metadata into the exact command line for an
// operation. It performs no I/O.
type Builder struct {
	tools Tools
}

func NewBuilder(tools Tools) *Builder {
	defaults := DefaultTools()
	if tools.Ghostscript == "" {
		tools.Ghostscript = defaults.Ghostscript
	}
	if tools.PDFToText == "" {
		tools.PDFToText = defaults.PDFToText
	}
	if tools.ImageMagick == "" {
		tools.ImageMagick = defaults.ImageMagick
	}
	return &Builder{tools: tools}
}

// OutputSuffix is the suffix the output path gets relative to the input path.
func (b *Builder) OutputSuffix(md domain.Metadata) scratch.Suffix {
	switch md.Op {
	case domain.OpConvertToText:
		return scratch.TextSuffix
	case domain.OpConvertImageFormat:
		return scratch.FormatSuffix(md.Format())
	default:
		return scratch.KeepName
	}
}

func (b *Builder) Build(md domain.Metadata, inputPath, outputPath string) (runner.Command, error) {
	switch md.Op {
	case domain.OpCompressPDF:
		return runner.Command{
			Name: b.tools.Ghostscript,
			Args: []string{
				"-sDEVICE=pdfwrite",
				"-dCompatibilityLevel=1.4",
				"-dPDFSETTINGS=/ebook",
				"-dNOPAUSE",
				"-dQUIET",
				"-dBATCH",
				"-sOutputFile=" + outputPath,
				inputPath,
			},
		}, nil

	case domain.OpConvertToText:
		return runner.Command{
			Name: b.tools.PDFToText,
			Args: []string{inputPath, outputPath},
		}, nil

	case domain.OpConvertImageFormat:
		if err := ValidateFormat(md.Format()); err != nil {
			return runner.Command{}, err
		}
		return runner.Command{
			Name: b.tools.ImageMagick,
			Args: []string{inputPath, outputPath},
		}, nil

	case domain.OpResizeImage:
		w, h, ok := md.Geometry()
		if !ok {
			return runner.Command{}, fmt.Errorf("resize requires geometry")
		}
		return runner.Command{
			Name: b.tools.ImageMagick,
			Args: []string{inputPath, "-resize", fmt.Sprintf("%dx%d", w, h), outputPath},
		}, nil
	}

	return runner.Command{}, fmt.Errorf("%w: %q", errors.ErrUnknownOperation, md.Op)
}

// ResultName is the file name reported to the client on success.
func ResultName(md domain.Metadata) string {
	name := scratch.Sanitize(md.FileName)

	switch md.Op {
	case domain.OpCompressPDF:
		return "compressed_" + name
	case domain.OpConvertToText:
		return name + ".txt"
	case domain.OpConvertImageFormat:
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		return "converted_" + stem + "." + md.Format()
	case domain.OpResizeImage:
		return "resized_" + name
	}
	return name
}

// SuccessMessage is the status message for a completed operation.
func SuccessMessage(op domain.Operation) string {
	switch op {
	case domain.OpCompressPDF:
		return "PDF compressed successfully"
	case domain.OpConvertToText:
		return "PDF converted to text successfully"
	case domain.OpConvertImageFormat:
		return "Image format converted successfully"
	case domain.OpResizeImage:
		return "Image resized successfully"
	}
	return "Done"
}

// ValidateFormat accepts 1-10 ASCII letters or digits.
func ValidateFormat(format string) error {
	if !formatPattern.MatchString(format) {
		return fmt.Errorf("invalid output format %q", format)
	}
	return nil
}

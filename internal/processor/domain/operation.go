package domain

import (
	"fmt"
	"strings"
)

// Operation is the transformation a session performs.
type Operation string

const (
	OpCompressPDF        Operation = "CompressPDF"
	OpConvertToText      Operation = "ConvertToText"
	OpConvertImageFormat Operation = "ConvertImageFormat"
	OpResizeImage        Operation = "ResizeImage"
)

var operations = []Operation{
	OpCompressPDF,
	OpConvertToText,
	OpConvertImageFormat,
	OpResizeImage,
}

// Operations lists every supported operation in a stable order.
func Operations() []Operation {
	return append([]Operation(nil), operations...)
}

func (o Operation) String() string {
	return string(o)
}

func (o Operation) IsValid() bool {
	for _, op := range operations {
		if o == op {
			return true
		}
	}
	return false
}

// ParseOperation accepts the canonical name in any case.
func ParseOperation(s string) (Operation, error) {
	for _, op := range operations {
		if strings.EqualFold(s, string(op)) {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown operation: %q", s)
}

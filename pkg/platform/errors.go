package platform

import "fmt"

// PlatformError records which platform call failed. The underlying error is
// kept for errors.Is checks such as os.ErrPermission.
type PlatformError struct {
	Platform  string
	Operation string
	Err       error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Platform, e.Operation, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

func NewPlatformError(platform, operation string, err error) error {
	return &PlatformError{Platform: platform, Operation: operation, Err: err}
}

package vtf

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching against the typed errors below.
var (
	ErrFormat                   = errors.New("vtf: malformed file")
	ErrUnsupportedVersion       = errors.New("vtf: unsupported version")
	ErrUnsupportedResourceCount = errors.New("vtf: unsupported resource count")
)

// FormatError reports a buffer that is too short for a structure or an
// offset that points outside the file.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "vtf: " + e.Reason
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedVersionError reports a header whose version is not the one
// expected: 0x360.8 for console headers, 7.x for host headers.
type UnsupportedVersionError struct {
	Major uint32
	Minor uint32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("vtf: unsupported version 0x%x.%d", e.Major, e.Minor)
}

func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// UnsupportedResourceCountError reports a dictionary that does not hold
// exactly one resource.
type UnsupportedResourceCountError struct {
	Count int
}

func (e *UnsupportedResourceCountError) Error() string {
	return fmt.Sprintf("vtf: unsupported resource count %d (only single-resource files are converted)", e.Count)
}

func (e *UnsupportedResourceCountError) Is(target error) bool {
	return target == ErrUnsupportedResourceCount
}

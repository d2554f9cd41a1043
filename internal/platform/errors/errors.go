package apperrors

import "errors"

var (
	ErrInvalidRange    = errors.New("day count outside valid range")
	ErrFileNotFound    = errors.New("export file not found")
	ErrFileTooLarge    = errors.New("export file too large")
	ErrMalformedExport = errors.New("not a recognized health export")
)

// Machine-readable codes surfaced in the response envelope.
const (
	CodeInvalidRange    = "INVALID_DAYS_RANGE"
	CodeFileNotFound    = "FILE_NOT_FOUND"
	CodeFileTooLarge    = "FILE_TOO_LARGE"
	CodeMalformedExport = "MALFORMED_EXPORT"
	CodeInternal        = "INTERNAL"
)

// Coded attaches an envelope code and a fix hint to an underlying error.
type Coded struct {
	Err  error
	Code string
	Fix  string
}

func (e *Coded) Error() string { return e.Err.Error() }

func (e *Coded) Unwrap() error { return e.Err }

func WithCode(err error, code, fix string) error {
	return &Coded{Err: err, Code: code, Fix: fix}
}

// CodeOf extracts the code and fix hint from an error chain. Errors without
// a Coded wrapper report CodeInternal.
func CodeOf(err error) (code, fix string) {
	var coded *Coded
	if errors.As(err, &coded) {
		return coded.Code, coded.Fix
	}
	return CodeInternal, ""
}

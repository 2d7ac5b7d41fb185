package writer

import "errors"

// Sentinel errors for the writer collaborators' argument checks. Errors
// from the destination io.Writer are not wrapped in these.
var (
	ErrNilModel       = errors.New("writer: model is nil")
	ErrInvalidGranularity = errors.New("writer: granularity must be a positive integer")
)

package fetch

import "errors"

// Domain-specific errors for the fetch package. These are the only
// request-fatal failures: per-task problems degrade inside the envelope
// instead.
var (
	ErrInvalidCredentials = errors.New("portal rejected the credentials")
	ErrVersionMismatch    = errors.New("portal api version mismatch")
	ErrUpstream           = errors.New("portal unreachable or faulted")
	ErrLoginTimeout       = errors.New("portal login timed out")
	ErrBadDateRange       = errors.New("start/end must be ISO dates (YYYY-MM-DD)")
)

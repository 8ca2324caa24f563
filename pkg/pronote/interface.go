package pronote

import (
	"context"
	"time"
)

// Authenticator opens authenticated sessions against the school portal.
type Authenticator interface {
	// Login performs the portal handshake. It returns ErrInvalidCredentials
	// when the portal rejects the account, ErrVersionMismatch when the
	// portal speaks an unexpected API version, and a wrapped transport
	// error for anything else.
	Login(ctx context.Context, username, password string) (Session, error)

	// SchoolURL returns the portal base URL, echoed in response metadata.
	SchoolURL() string
}

// Session is an authenticated handle to the portal, scoped to a single
// request. Implementations must be safe for concurrent read calls: the
// caller issues several fetches against one Session at the same time.
// Close releases any underlying resources; the Session must not be used
// afterwards.
type Session interface {
	// Periods returns all grading periods with their raw grade records.
	Periods(ctx context.Context) ([]Period, error)

	// Lessons returns raw timetable entries for the inclusive date range.
	// When includeContent is set the portal is asked for the costlier
	// per-lesson content fields as well.
	Lessons(ctx context.Context, start, end time.Time, includeContent bool) ([]Lesson, error)

	// Homework returns raw homework records for the inclusive date range.
	Homework(ctx context.Context, start, end time.Time) ([]Homework, error)

	Close()
}

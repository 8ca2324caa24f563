package fetch

import "context"

// UseCase defines the business logic interface for the fetch domain.
type UseCase interface {
	// Fetch authenticates against the portal and aggregates grades,
	// lessons and homework into one envelope. Partial upstream failure is
	// reported inside the envelope; the returned error is non-nil only
	// for request-fatal problems (bad input, rejected credentials,
	// upstream fault before any task ran).
	Fetch(ctx context.Context, input Input) (Envelope, error)

	// ProbeLogin checks only that the portal accepts the credentials,
	// under the login budget. Diagnostic; no data is fetched.
	ProbeLogin(ctx context.Context, username, password string) (ProbeOutput, error)

	// Mock reports whether the upstream bypass mode is active.
	Mock() bool

	// IncludeContent reports whether detailed lesson content is fetched.
	IncludeContent() bool
}

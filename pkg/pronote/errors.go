package pronote

import "errors"

var (
	// ErrInvalidCredentials is returned when the portal rejects the account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrVersionMismatch is returned when the portal reports an API version
	// other than the one this client was built against.
	ErrVersionMismatch = errors.New("unexpected portal api version")
)

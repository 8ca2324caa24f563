package http

import (
	"errors"

	"pronote-gateway/internal/fetch"
	pkgErrors "pronote-gateway/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// RULE: panic on unknown errors in development to force explicit handling.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, fetch.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(401, "invalid_credentials")
	case errors.Is(err, fetch.ErrVersionMismatch):
		return pkgErrors.NewHTTPError(500, "portal API version mismatch")
	case errors.Is(err, fetch.ErrLoginTimeout):
		return pkgErrors.NewHTTPError(504, "portal login timed out")
	case errors.Is(err, fetch.ErrUpstream):
		return pkgErrors.NewHTTPError(502, "portal unreachable")
	case errors.Is(err, fetch.ErrBadDateRange):
		return pkgErrors.NewHTTPError(400, "invalid date range")
	default:
		// Force developers to explicitly handle every domain error.
		// In production this should return ErrInternalServerError instead of panic.
		panic(err)
	}
}

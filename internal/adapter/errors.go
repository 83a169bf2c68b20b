package adapter

import "errors"

// Transport errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrInvalidSlug is returned when a fetcher is asked for a slug that is
	// not in its sanitised form.
	ErrInvalidSlug = errors.New("invalid client slug")

	// ErrMailerNotConfigured is returned when the mail provider API key is
	// missing.
	ErrMailerNotConfigured = errors.New("mail provider is not configured")

	// ErrMailDispatchFailed wraps any failure of the mail provider call.
	ErrMailDispatchFailed = errors.New("failed to send email")
)

package validators

import "errors"

// ErrUnsupportedType is returned when a validator receives a value it does
// not know how to check.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// Feedback validation errors. Their messages are shown to the caller as-is.
var (
	ErrInvalidCategory   = errors.New("Invalid category")
	ErrMessageRequired   = errors.New("Message is required")
	ErrMessageTooLong    = errors.New("Message must be 5000 characters or fewer")
	ErrClientNameTooLong = errors.New("Client name must be 200 characters or fewer")
	ErrUnknownField      = errors.New("unknown field for validation")
)

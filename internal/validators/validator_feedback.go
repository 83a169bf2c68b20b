package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-playbook/models"
)

// Field names accepted by [FeedbackValidator.Validate] to restrict which
// checks run.
const (
	FieldCategory   = "category"
	FieldMessage    = "message"
	FieldClientName = "client_name"
)

const (
	// MaxMessageLength is the longest accepted message, in characters.
	MaxMessageLength = 5000
	// MaxClientNameLength is the longest accepted client name, in characters.
	MaxClientNameLength = 200
)

// FeedbackValidator checks feedback submitted through the intake endpoint.
type FeedbackValidator struct{}

// NewFeedbackValidator returns a [Validator] for [models.Feedback].
func NewFeedbackValidator() Validator {
	return &FeedbackValidator{}
}

// Validate checks category, then message, then client name, and returns the
// first failure. fields narrows the checks to the named ones.
func (v *FeedbackValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Feedback:
		return v.validateFeedback(ctx, value, fields...)
	case *models.Feedback:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateFeedback(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FeedbackValidator) validateFeedback(_ context.Context, feedback models.Feedback, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategory, FieldMessage, FieldClientName}
	}

	for _, f := range fields {
		switch f {
		case FieldCategory:
			if !feedback.Category.IsValid() {
				return ErrInvalidCategory
			}
		case FieldMessage:
			if strings.TrimSpace(feedback.Message) == "" {
				return ErrMessageRequired
			}
			if utf8.RuneCountInString(feedback.Message) > MaxMessageLength {
				return ErrMessageTooLong
			}
		case FieldClientName:
			if utf8.RuneCountInString(feedback.ClientName) > MaxClientNameLength {
				return ErrClientNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

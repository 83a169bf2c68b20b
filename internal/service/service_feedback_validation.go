package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-playbook/internal/validators"
	"github.com/MKhiriev/go-playbook/models"
)

// FeedbackServiceWrapper defines middleware composition for FeedbackService.
// Implementations wrap an existing FeedbackService to add behavior such as
// validation.
type FeedbackServiceWrapper interface {
	Wrap(FeedbackService) FeedbackService
}

// FeedbackValidationService rejects invalid feedback before it reaches the
// wrapped service, so input errors are reported even when mail is not
// configured.
type FeedbackValidationService struct {
	inner     FeedbackService
	validator validators.Validator
}

// NewFeedbackValidationService returns a wrapper validating with
// [validators.FeedbackValidator].
func NewFeedbackValidationService() FeedbackServiceWrapper {
	return &FeedbackValidationService{
		validator: validators.NewFeedbackValidator(),
	}
}

func (v *FeedbackValidationService) Submit(ctx context.Context, req models.FeedbackRequest) error {
	if err := v.validator.Validate(ctx, req.Feedback); err != nil {
		return fmt.Errorf("error during feedback validation: %w", err)
	}

	return v.inner.Submit(ctx, req)
}

func (v *FeedbackValidationService) Wrap(inner FeedbackService) FeedbackService {
	v.inner = inner
	return v
}

package service

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-playbook/internal/adapter"
	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/mock"
	"github.com/MKhiriev/go-playbook/internal/validators"
	"github.com/MKhiriev/go-playbook/models"
)

var submittedAt = time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC)

func newTestFeedbackSvc(t *testing.T, ctrl *gomock.Controller) (FeedbackService, *mock.MockMailer) {
	t.Helper()
	mailer := mock.NewMockMailer(ctrl)
	resolver := newTestResolver(t, adapter.NewFileConfigFetcher(fstest.MapFS{
		"clients/acme.json": {Data: []byte(`{"siteConfig":{"feedbackEmail":"ops@acme.test","appTitle":"Acme Playbook"}}`)},
	}))

	svc, err := NewFeedbackService(resolver, mailer, logger.Nop())
	require.NoError(t, err)
	svc.(*feedbackService).now = func() time.Time { return submittedAt }

	return NewFeedbackValidationService().Wrap(svc), mailer
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestSubmit_SendsToTenantRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mailer := newTestFeedbackSvc(t, ctrl)

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email models.Email) error {
			assert.Equal(t, []string{"ops@acme.test"}, email.To)
			assert.Equal(t, "Acme Playbook <noreply@playbook.example.co.uk>", email.From)
			assert.Equal(t, "[Playbook Feedback] Issue report", email.Subject)
			assert.Contains(t, email.Text, "Client: Acme Ltd (acme)")
			assert.Contains(t, email.Text, "Submitted: 2026-06-01T09:30:00Z")
			assert.Contains(t, email.Text, "The link is broken")
			return nil
		},
	)

	err := svc.Submit(context.Background(), models.FeedbackRequest{
		Feedback: models.Feedback{Category: models.FeedbackCategoryIssue, Message: "The link is broken", ClientName: "Acme Ltd"},
		Referer:  "https://acme.playbook.example.co.uk/page",
	})
	require.NoError(t, err)
}

func TestSubmit_EscapesHTML(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mailer := newTestFeedbackSvc(t, ctrl)

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email models.Email) error {
			assert.NotContains(t, email.HTML, "<script>")
			assert.Contains(t, email.HTML, "&lt;script&gt;alert(1)&lt;/script&gt;<br>bye")
			return nil
		},
	)

	err := svc.Submit(context.Background(), models.FeedbackRequest{
		Feedback: models.Feedback{Category: models.FeedbackCategoryGeneral, Message: "<script>alert(1)</script>\nbye"},
	})
	require.NoError(t, err)
}

func TestSubmit_ValidationRunsBeforeMailer(t *testing.T) {
	tests := []struct {
		name     string
		feedback models.Feedback
		want     error
	}{
		{name: "empty message", feedback: models.Feedback{Category: models.FeedbackCategoryGeneral}, want: validators.ErrMessageRequired},
		{name: "bad category", feedback: models.Feedback{Category: "praise", Message: "hi"}, want: validators.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestFeedbackSvc(t, ctrl)
			// mailer has no expectations

			err := svc.Submit(context.Background(), models.FeedbackRequest{Feedback: tt.feedback})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSubmit_MailerErrorsPropagate(t *testing.T) {
	for _, want := range []error{adapter.ErrMailerNotConfigured, adapter.ErrMailDispatchFailed} {
		ctrl := gomock.NewController(t)
		svc, mailer := newTestFeedbackSvc(t, ctrl)

		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(want)

		err := svc.Submit(context.Background(), models.FeedbackRequest{
			Feedback: models.Feedback{Category: models.FeedbackCategoryMoreInfo, Message: "tell me more"},
		})
		assert.True(t, errors.Is(err, want))
	}
}

func TestNewFeedbackService_NilDependencies(t *testing.T) {
	_, err := NewFeedbackService(nil, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNilDependency)
}

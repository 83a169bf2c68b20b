package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-playbook/internal/config"
	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/utils"
	"github.com/MKhiriev/go-playbook/models"
)

type resendMailer struct {
	client *utils.HTTPClient
	apiKey string
	logger *logger.Logger
}

type resendResponse struct {
	ID string `json:"id"`
}

// NewResendMailer constructs a [Mailer] for the Resend HTTP API. A missing
// API key does not fail construction; Send reports [ErrMailerNotConfigured]
// instead so the server can start without mail credentials.
func NewResendMailer(mailCfg config.Mail, logger *logger.Logger) (Mailer, error) {
	baseURL, err := normalizeBaseURL(mailCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(mailCfg.RequestTimeout)

	return &resendMailer{
		client: client,
		apiKey: strings.TrimSpace(mailCfg.APIKey),
		logger: logger,
	}, nil
}

// Send implements [Mailer] with POST {BaseURL}/emails.
func (m *resendMailer) Send(ctx context.Context, email models.Email) error {
	if m.apiKey == "" {
		return ErrMailerNotConfigured
	}

	var result resendResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetAuthToken(m.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(email).
		SetResult(&result).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMailDispatchFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %w", ErrMailDispatchFailed, err)
	}

	m.logger.Info().Str("email_id", result.ID).Strs("to", email.To).Msg("email sent")
	return nil
}

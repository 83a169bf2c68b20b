package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/MKhiriev/go-playbook/internal/adapter"
	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/models"
)

type feedbackService struct {
	resolver EmailConfigResolver
	mailer   adapter.Mailer
	now      func() time.Time
	logger   *logger.Logger
}

// NewFeedbackService builds a [FeedbackService] that addresses feedback with
// the tenant's email configuration and sends it through mailer. It does not
// validate input; wrap it with [NewFeedbackValidationService].
func NewFeedbackService(resolver EmailConfigResolver, mailer adapter.Mailer, logger *logger.Logger) (FeedbackService, error) {
	if resolver == nil || mailer == nil {
		return nil, ErrNilDependency
	}

	return &feedbackService{
		resolver: resolver,
		mailer:   mailer,
		now:      time.Now,
		logger:   logger,
	}, nil
}

func (s *feedbackService) Submit(ctx context.Context, req models.FeedbackRequest) error {
	slug, emailCfg := s.resolver.Resolve(ctx, req.Referer, req.Origin)

	email := buildFeedbackEmail(slug, emailCfg, req.Feedback, s.now().UTC())
	if err := s.mailer.Send(ctx, email); err != nil {
		s.logger.Err(err).Str("client", slug).Str("category", string(req.Feedback.Category)).Msg("error sending feedback email")
		return err
	}

	s.logger.Info().Str("client", slug).Str("category", string(req.Feedback.Category)).Msg("feedback sent")
	return nil
}

func buildFeedbackEmail(slug string, cfg models.EmailConfig, feedback models.Feedback, at time.Time) models.Email {
	label := feedback.Category.Label()

	client := slug
	if name := strings.TrimSpace(feedback.ClientName); name != "" {
		client = fmt.Sprintf("%s (%s)", name, slug)
	}
	submitted := at.Format(time.RFC3339)

	var text strings.Builder
	fmt.Fprintf(&text, "Category: %s\n", label)
	fmt.Fprintf(&text, "Client: %s\n", client)
	fmt.Fprintf(&text, "Submitted: %s\n\n", submitted)
	text.WriteString(feedback.Message)

	var body strings.Builder
	body.WriteString("<h2>" + html.EscapeString(label) + "</h2>")
	body.WriteString("<p><strong>Client:</strong> " + html.EscapeString(client) + "<br>")
	body.WriteString("<strong>Submitted:</strong> " + html.EscapeString(submitted) + "</p>")
	body.WriteString("<p>" + strings.ReplaceAll(html.EscapeString(feedback.Message), "\n", "<br>") + "</p>")

	return models.Email{
		From:    cfg.From(),
		To:      []string{cfg.RecipientEmail},
		Subject: strings.TrimSpace(cfg.SubjectPrefix + " " + label),
		Text:    text.String(),
		HTML:    body.String(),
	}
}

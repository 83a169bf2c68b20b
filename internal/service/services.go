package service

import (
	"fmt"

	"github.com/MKhiriev/go-playbook/internal/adapter"
	"github.com/MKhiriev/go-playbook/internal/clientconfig"
	"github.com/MKhiriev/go-playbook/internal/config"
	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/store"
)

// Services groups the server-side services used by the HTTP handlers.
type Services struct {
	ConfigLoader        ConfigLoader
	EmailConfigResolver EmailConfigResolver
	FeedbackService     FeedbackService
	AppInfoService      AppInfoService
}

// NewServices wires the server services: tenant files are read from the
// public directory, resolved configs are cached in storages, and feedback is
// validated then mailed through the configured provider.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	defaults := clientconfig.Default()
	fetcher := adapter.NewPublicDirConfigFetcher(cfg.Server.PublicDir)

	loader, err := NewConfigLoader(fetcher, storages.ConfigCache, defaults,
		WithTTL(cfg.Storage.Cache.TTL),
		WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating config loader: %w", err)
	}

	resolver, err := NewEmailConfigResolver(fetcher, defaults, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating email config resolver: %w", err)
	}

	mailer, err := adapter.NewResendMailer(cfg.Mail, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating mailer: %w", err)
	}
	if cfg.Mail.APIKey == "" {
		logger.Warn().Msg("mail API key is not set, feedback submissions will fail")
	}

	feedback, err := NewFeedbackService(resolver, mailer, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating feedback service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ConfigLoader:        loader,
		EmailConfigResolver: resolver,
		FeedbackService:     NewFeedbackValidationService().Wrap(feedback),
		AppInfoService:      appInfo,
	}, nil
}

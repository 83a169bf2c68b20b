package service

import (
	"context"

	"github.com/MKhiriev/go-playbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConfigLoader resolves the complete configuration of a tenant. It never
// fails: any problem is absorbed and reported through the result outcome.
type ConfigLoader interface {
	// Load returns the tagged outcome of resolving slug.
	Load(ctx context.Context, slug string) models.LoadResult
	// LoadClientConfig is Load collapsed to the configuration alone.
	LoadClientConfig(ctx context.Context, slug string) models.ClientConfig
}

// EmailConfigResolver resolves the email settings of the tenant a request
// came from.
type EmailConfigResolver interface {
	// Resolve returns the tenant slug derived from the Referer/Origin headers
	// and that tenant's email configuration.
	Resolve(ctx context.Context, referer, origin string) (string, models.EmailConfig)
}

// FeedbackService accepts visitor feedback and delivers it by email.
type FeedbackService interface {
	Submit(ctx context.Context, req models.FeedbackRequest) error
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

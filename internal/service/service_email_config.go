package service

import (
	"context"

	"github.com/MKhiriev/go-playbook/internal/adapter"
	"github.com/MKhiriev/go-playbook/internal/clientconfig"
	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/tenant"
	"github.com/MKhiriev/go-playbook/models"
)

// emailConfigResolver reads the tenant file on every call. Files are local
// to the deployment, so there is no cache.
type emailConfigResolver struct {
	fetcher  adapter.ConfigFetcher
	defaults models.ClientConfig
	logger   *logger.Logger
}

// NewEmailConfigResolver builds an [EmailConfigResolver] reading tenant files
// through fetcher, normally a public directory fetcher.
func NewEmailConfigResolver(fetcher adapter.ConfigFetcher, defaults models.ClientConfig, logger *logger.Logger) (EmailConfigResolver, error) {
	if fetcher == nil {
		return nil, ErrNilDependency
	}

	return &emailConfigResolver{
		fetcher:  fetcher,
		defaults: defaults.Clone(),
		logger:   logger,
	}, nil
}

// Resolve implements [EmailConfigResolver]. The default tenant never touches
// the filesystem; any read or parse failure yields the default email
// configuration.
func (r *emailConfigResolver) Resolve(ctx context.Context, referer, origin string) (string, models.EmailConfig) {
	slug := tenant.Resolve(tenant.HostnameFromHeaders(referer, origin))
	defaultEmail := clientconfig.EmailConfigFrom(r.defaults.SiteConfig)

	if tenant.IsDefault(slug) {
		return slug, defaultEmail
	}

	data, err := r.fetcher.FetchClientConfig(ctx, slug)
	if err != nil {
		r.logger.Warn().Err(err).Str("client", slug).Msg("tenant file unavailable, using default email config")
		return slug, defaultEmail
	}

	cfg, err := clientconfig.ProjectEmailConfig(data, defaultEmail)
	if err != nil {
		r.logger.Warn().Err(err).Str("client", slug).Msg("tenant file is malformed, using default email config")
		return slug, defaultEmail
	}

	return slug, cfg
}

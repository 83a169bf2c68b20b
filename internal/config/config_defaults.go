package config

import "time"

const (
	defaultHTTPAddress        = "localhost:8080"
	defaultRequestTimeout     = 10 * time.Second
	defaultPublicDir          = "public"
	defaultFeedbackRateLimit  = 5
	defaultFeedbackRateWindow = time.Minute
	defaultCacheTTL           = time.Hour
	defaultMailBaseURL        = "https://api.resend.com"
	defaultAdapterAddress     = "http://localhost:8080"
	defaultAdapterTimeout     = 5 * time.Second
	defaultPreviewPageURL     = "http://localhost/"
	defaultVersion            = "dev"
)

func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.PublicDir == "" {
		cfg.Server.PublicDir = defaultPublicDir
	}
	if cfg.Server.FeedbackRateLimit == 0 {
		cfg.Server.FeedbackRateLimit = defaultFeedbackRateLimit
	}
	if cfg.Server.FeedbackRateWindow == 0 {
		cfg.Server.FeedbackRateWindow = defaultFeedbackRateWindow
	}
	if cfg.Storage.Cache.TTL == 0 {
		cfg.Storage.Cache.TTL = defaultCacheTTL
	}
	if cfg.Mail.BaseURL == "" {
		cfg.Mail.BaseURL = defaultMailBaseURL
	}
	if cfg.Mail.RequestTimeout == 0 {
		cfg.Mail.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.Preview.PageURL == "" {
		cfg.Preview.PageURL = defaultPreviewPageURL
	}
}

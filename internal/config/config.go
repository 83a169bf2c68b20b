// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-playbook application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and the
	// build-time default client override.
	App App `envPrefix:"APP_"`

	// Server holds the listen address, static files location and feedback
	// intake limits of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the client configuration cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Mail holds the credentials of the mail provider used to deliver
	// feedback.
	Mail Mail `envPrefix:"MAIL_"`

	// Adapter holds the address the preview client fetches tenant files from.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Preview holds what the preview client pretends to be served at.
	Preview Preview `envPrefix:"PREVIEW_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DefaultClient forces a tenant when the hostname resolves to the default
	// tenant. Intended for previews and local development.
	// Env: APP_DEFAULT_CLIENT
	DefaultClient string `env:"DEFAULT_CLIENT"`
}

// Server holds network and static-content settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PublicDir is the directory holding the compiled SPA and the
	// clients/{slug}.json tenant files.
	// Env: SERVER_PUBLIC_DIR
	PublicDir string `env:"PUBLIC_DIR"`

	// FeedbackRateLimit is the number of feedback submissions accepted per
	// client IP within FeedbackRateWindow.
	// Env: SERVER_FEEDBACK_RATE_LIMIT
	FeedbackRateLimit int `env:"FEEDBACK_RATE_LIMIT"`

	// FeedbackRateWindow is the sliding window of FeedbackRateLimit.
	// Env: SERVER_FEEDBACK_RATE_WINDOW
	FeedbackRateWindow time.Duration `env:"FEEDBACK_RATE_WINDOW"`

	// TrustProxy makes the server take the client IP from X-Forwarded-For
	// or X-Real-IP. Enable only behind a reverse proxy that sets them.
	// Env: SERVER_TRUST_PROXY
	TrustProxy bool `env:"TRUST_PROXY"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// Cache holds the resolved client configuration cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// Cache configures where resolved client configurations are cached.
type Cache struct {
	// DSN selects the backend: empty for in-memory, a postgres:// URL for
	// PostgreSQL, anything else is an SQLite file path.
	// Env: STORAGE_CACHE_DSN
	DSN string `env:"DSN"`

	// TTL is the maximum age of a cache entry.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Mail holds settings of the HTTP mail provider.
type Mail struct {
	// APIKey is the provider credential. Feedback cannot be sent without it.
	// Env: MAIL_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL is the provider API root.
	// Env: MAIL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single send call.
	// Env: MAIL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration of the outbound HTTP integration used by the
// preview client.
type Adapter struct {
	// HTTPAddress is the base URL of the playbook server that serves
	// /clients/{slug}.json (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single tenant file fetch.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Preview describes the page the preview client simulates.
type Preview struct {
	// PageURL is the page address the preview resolves the tenant from,
	// including an optional ?client= override
	// (e.g. "https://acme.playbook.example.co.uk/").
	// Env: PREVIEW_PAGE_URL
	PageURL string `env:"PAGE_URL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from environment variables, command-line flags and an
// optional JSON file (path resolved from the first two).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

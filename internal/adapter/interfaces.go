// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the I/O primitives the playbook depends on: reading
// a tenant configuration file by slug and dispatching an email through the
// mail provider.
//
// Tenant files are read either over HTTP from the deployment that serves
// /clients/{slug}.json ([NewHTTPConfigFetcher]) or straight from the public
// directory ([NewFileConfigFetcher]). Both refuse slugs that did not pass
// [tenant.SanitiseSlug].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-playbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ConfigFetcher reads the raw tenant configuration document for a slug.
type ConfigFetcher interface {
	// FetchClientConfig returns the bytes of clients/{slug}.json. A missing
	// file is reported as [ErrNotFound]; an unsafe slug as [ErrInvalidSlug].
	FetchClientConfig(ctx context.Context, slug string) ([]byte, error)
}

// Mailer delivers a single email.
type Mailer interface {
	// Send dispatches email. It returns [ErrMailerNotConfigured] when no
	// provider credential is set and wraps provider failures in
	// [ErrMailDispatchFailed].
	Send(ctx context.Context, email models.Email) error
}

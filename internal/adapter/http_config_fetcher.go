package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-playbook/internal/config"
	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/tenant"
	"github.com/MKhiriev/go-playbook/internal/utils"
)

type httpConfigFetcher struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPConfigFetcher constructs a [ConfigFetcher] that GETs
// {HTTPAddress}/clients/{slug}.json. It normalises the base URL from
// adapterCfg.HTTPAddress and applies adapterCfg.RequestTimeout to every call.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPConfigFetcher(adapterCfg config.Adapter, logger *logger.Logger) (ConfigFetcher, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpConfigFetcher{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchClientConfig implements [ConfigFetcher].
func (h *httpConfigFetcher) FetchClientConfig(ctx context.Context, slug string) ([]byte, error) {
	if tenant.SanitiseSlug(slug) != slug || tenant.IsDefault(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("slug", slug).
		Get("/clients/{slug}.json")
	if err != nil {
		return nil, fmt.Errorf("fetch client config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Str("client", slug).Int("bytes", len(resp.Body())).Msg("fetched client config")
	return resp.Body(), nil
}

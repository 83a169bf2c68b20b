// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. A missing mail API key
// is not an error: the feedback endpoint reports it per request.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.PublicDir == "" || cfg.Server.FeedbackRateLimit < 0 || cfg.Server.FeedbackRateWindow < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.Cache.TTL <= 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.Cache.TTL <= 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}

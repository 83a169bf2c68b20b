package config

import (
	"fmt"
)

// ClientConfig is the preview client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains the version and the build-time default client.
	App App
	// Adapter contains the playbook server address and timeout.
	Adapter Adapter
	// Storage contains the persistent cache settings.
	Storage Storage
	// Preview contains the simulated page URL.
	Preview Preview
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Preview: cfg.Preview,
	}

	return clientCfg, clientCfg.validate()
}

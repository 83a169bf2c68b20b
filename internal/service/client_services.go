package service

import (
	"github.com/MKhiriev/go-playbook/internal/adapter"
	"github.com/MKhiriev/go-playbook/internal/clientconfig"
	"github.com/MKhiriev/go-playbook/internal/config"
	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/store"
)

// ClientServices groups the services of the preview client.
type ClientServices struct {
	ConfigLoader ConfigLoader
}

// NewClientServices wires the preview loader: tenant files come from the
// playbook server through fetcher and are cached in the local storages.
func NewClientServices(storages *store.Storages, fetcher adapter.ConfigFetcher, cfg *config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	loader, err := NewConfigLoader(fetcher, storages.ConfigCache, clientconfig.Default(),
		WithTTL(cfg.Storage.Cache.TTL),
		WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return &ClientServices{ConfigLoader: loader}, nil
}

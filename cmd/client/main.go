package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-playbook/internal/adapter"
	"github.com/MKhiriev/go-playbook/internal/client"
	"github.com/MKhiriev/go-playbook/internal/clientconfig"
	"github.com/MKhiriev/go-playbook/internal/config"
	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/service"
	"github.com/MKhiriev/go-playbook/internal/store"
	"github.com/MKhiriev/go-playbook/internal/tenant"
	"github.com/MKhiriev/go-playbook/internal/tui"
	"github.com/MKhiriev/go-playbook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("playbook-preview")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher, err := adapter.NewHTTPConfigFetcher(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create config fetcher")
	}

	localStorage, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services, err := service.NewClientServices(localStorage, fetcher, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	slug := tenant.ResolvePageURL(cfg.Preview.PageURL, cfg.App.DefaultClient)
	provider, err := client.NewConfigProvider(slug, services.ConfigLoader, clientconfig.Default(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create config provider")
	}

	ui := tui.New(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(provider, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-seller-sync/internal/adapter"
	"github.com/MKhiriev/go-seller-sync/internal/client"
	"github.com/MKhiriev/go-seller-sync/internal/config"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/service"
	"github.com/MKhiriev/go-seller-sync/internal/store"
	"github.com/MKhiriev/go-seller-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("go-seller-sync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, cfg.Workers.Resources, log)

	app, err := client.NewApp(services, serverAdapter, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

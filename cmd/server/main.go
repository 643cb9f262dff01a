package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-seller-sync/internal/config"
	"github.com/MKhiriev/go-seller-sync/internal/handler"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/server"
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

	log := logger.NewLogger("go-seller-sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.IssueTokenFor != 0 {
		issueToken(cfg, log)
		return
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// issueToken prints a bearer token for the seller named by -issue-token-for.
func issueToken(cfg *config.StructuredConfig, log *logger.Logger) {
	token, err := service.NewAuthService(cfg.App, log).CreateToken(context.Background(), cfg.IssueTokenFor)
	if err != nil {
		log.Fatal().Err(err).Int64("seller_id", cfg.IssueTokenFor).Msg("error issuing token")
	}

	fmt.Println(token.String())
}

package client

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-seller-sync/internal/adapter"
	"github.com/MKhiriev/go-seller-sync/internal/config"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/service"
	"github.com/MKhiriev/go-seller-sync/internal/workers"
)

var _ Client = (*App)(nil)

type App struct {
	services      *service.ClientServices
	serverAdapter adapter.ServerAdapter
	workersCfg    config.ClientWorkers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, serverAdapter adapter.ServerAdapter, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.SyncService == nil || services.SyncJob == nil {
		return nil, ErrNoServices
	}
	if serverAdapter == nil {
		return nil, ErrNoServerAdapter
	}

	return &App{
		services:      services,
		serverAdapter: serverAdapter,
		workersCfg:    workersCfg,
		logger:        logger,
	}, nil
}

// Run mirrors the server until SIGINT, SIGTERM or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

// run performs one full pass right away, then hands over to the periodic
// sync worker until ctx is done.
func (a *App) run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	if version, err := a.serverAdapter.GetAppVersion(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server version is unavailable")
	} else {
		a.logger.Info().Str("server_version", version).Msg("connected to sync server")
	}

	if err := a.services.SyncService.SyncAll(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync finished with errors")
	}

	ws := workers.NewWorkers(
		workers.NewSyncWorker(ctx, a.services.SyncJob, a.workersCfg.SyncInterval, a.logger),
	)
	ws.Run()
	defer ws.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("client agent stopping")

	return nil
}

package agent

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/workers"
)

type app struct {
	services *service.ClientServices
	cfg      *config.AgentConfig
	logger   *logger.Logger
}

// NewApp wires the agent runtime: local SQLite storage, the HTTP server
// adapter, and the client service layer.
func NewApp(cfg *config.AgentConfig, logger *logger.Logger) (Agent, error) {
	localStorage, err := store.NewClientStorages(cfg.Storage.Local, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	services := service.NewClientServices(localStorage, serverAdapter, cfg.App)

	return &app{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run performs one immediate sync pass, starts the periodic sync worker and
// blocks until a stop signal arrives.
func (a *app) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	result := a.services.SyncService.FullVaultSync(ctx)
	a.logger.Info().
		Bool("success", result.Success).
		Bool("offline", result.WasOffline).
		Str("error_code", result.ErrorCode).
		Msg("initial sync pass")

	ws := workers.NewWorkers(
		workers.NewSyncWorker(ctx, a.services.SyncJob, a.cfg.Workers.SyncInterval),
	)
	ws.Run()

	<-ctx.Done()

	a.services.SyncJob.Stop()
	a.logger.Info().Msg("agent shutdown gracefully")

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-record-sync/internal/adapter"
	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/service"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/internal/workers"
)

// App is the sync agent: local storage, remote client, orchestrator and the
// cadence workers driving it.
type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp opens the local store and wires every component from cfg. The
// caller owns the returned App and must end it with Run.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewClient(cfg.Adapter, cfg.App, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create remote client: %w", err)
	}

	services, err := service.NewClientServices(storages, remote, cfg.Sync, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		workers:  workers.NewCadenceWorkers(services.SyncService, cfg.Workers.FrequentInterval, cfg.Workers.DailyInterval, log),
		logger:   log,
	}, nil
}

// Run starts the cadence workers and blocks until ctx is done. It then
// waits for running syncs to return and closes the local store.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Int("entities", len(a.services.Entities)).Msg("sync agent started")

	a.workers.Start(ctx)
	<-ctx.Done()
	a.workers.Stop()

	a.logger.Info().Msg("sync agent stopped")
	return a.storages.Close()
}

// RunOnce performs the one-shot invocation selected by run and closes the
// local store. Without an entity every entity is synced; entities needing an
// approved session are then skipped without one. A named entity runs the
// requested operation and fails when its session is not approved.
func (a *App) RunOnce(ctx context.Context, run config.ClientRun) error {
	var err error
	if run.Entity == "" {
		err = a.services.SyncService.SyncAll(ctx)
	} else {
		err = a.runEntity(ctx, run.Entity, run.Operation)
	}
	return errors.Join(err, a.storages.Close())
}

func (a *App) runEntity(ctx context.Context, entity, operation string) error {
	syncer := a.services.SyncService

	switch operation {
	case "", config.RunOperationSync:
		return syncer.SyncEntity(ctx, entity)
	case config.RunOperationPush:
		return syncer.PushEntity(ctx, entity)
	case config.RunOperationPull:
		return syncer.PullEntity(ctx, entity)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, operation)
	}
}

// Reports returns the most recent outcome of every entity that has run, in
// registration order.
func (a *App) Reports() []service.SyncReport {
	reports := make([]service.SyncReport, 0, len(a.services.Entities))
	for _, e := range a.services.Entities {
		if r, ok := a.services.SyncService.LastSync(e.Name()); ok {
			reports = append(reports, r)
		}
	}
	return reports
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/modelsync"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewCadenceWorkers returns one [SyncJob] per cadence tier.
func NewCadenceWorkers(syncer CadenceSyncer, frequent, daily time.Duration, log *logger.Logger) *Workers {
	return NewWorkers(
		NewSyncJob(syncer, modelsync.CadenceFrequent, frequent, log),
		NewSyncJob(syncer, modelsync.CadenceDaily, daily, log),
	)
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

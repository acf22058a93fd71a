// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/modelsync"
)

// Default intervals of the cadence tiers.
const (
	DefaultFrequentInterval = 15 * time.Minute
	DefaultDailyInterval    = 24 * time.Hour
)

// SyncJob syncs one cadence tier on a ticker.
type SyncJob struct {
	syncer   CadenceSyncer
	cadence  modelsync.Cadence
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates an idle job syncing cadence every interval. A zero or
// negative interval falls back to the tier default.
func NewSyncJob(syncer CadenceSyncer, cadence modelsync.Cadence, interval time.Duration, log *logger.Logger) *SyncJob {
	if interval <= 0 {
		interval = defaultInterval(cadence)
	}

	return &SyncJob{
		syncer:   syncer,
		cadence:  cadence,
		interval: interval,
		logger:   log,
	}
}

func defaultInterval(cadence modelsync.Cadence) time.Duration {
	if cadence == modelsync.CadenceDaily {
		return DefaultDailyInterval
	}
	return DefaultFrequentInterval
}

// Interval returns the period between two runs.
func (j *SyncJob) Interval() time.Duration {
	return j.interval
}

// Start stops a previously started run loop, then syncs the tier once right
// away and again on every tick. The loop exits when ctx is canceled or Stop
// is called. Sync failures are logged and never end the loop.
func (j *SyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.run(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx)
			}
		}
	}()
}

func (j *SyncJob) run(ctx context.Context) {
	if err := j.syncer.SyncCadence(ctx, j.cadence); err != nil {
		j.logger.Err(err).Str("func", "SyncJob.run").Str("cadence", string(j.cadence)).Msg("scheduled sync failed")
		return
	}
	j.logger.Debug().Str("func", "SyncJob.run").Str("cadence", string(j.cadence)).Msg("scheduled sync finished")
}

// Stop cancels the run loop and blocks until it has exited. Calling it on an
// idle job is a no-op.
func (j *SyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

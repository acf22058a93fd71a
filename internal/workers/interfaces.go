// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the agent's background sync schedule: one ticker job
// per cadence tier, started and stopped together.
package workers

import (
	"context"

	"github.com/MKhiriev/go-record-sync/internal/modelsync"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cadence_syncer_mock.go -package=mock

// Worker is a background job with an explicit lifecycle.
type Worker interface {
	// Start launches the job. It returns immediately.
	Start(ctx context.Context)

	// Stop halts the job and waits for a running sync to return.
	Stop()
}

// CadenceSyncer syncs every entity of one cadence tier.
type CadenceSyncer interface {
	SyncCadence(ctx context.Context, cadence modelsync.Cadence) error
}

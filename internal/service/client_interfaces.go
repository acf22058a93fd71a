// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-record-sync/internal/modelsync"
)

// SessionGate reports whether the agent currently holds a session approved
// for exchanging patient data.
type SessionGate interface {
	HasApprovedSession(ctx context.Context) bool
}

// TokenSource hands out the current session token.
type TokenSource interface {
	Token() string
}

// SyncService orchestrates the entity syncs of the agent. It owns the list
// of entities, gates them on the session and keeps two triggers from syncing
// the same entity at once.
type SyncService interface {
	// SyncAll runs push and pull of every entity concurrently.
	SyncAll(ctx context.Context) error

	// SyncCadence runs push and pull of every entity scheduled at cadence.
	SyncCadence(ctx context.Context, cadence modelsync.Cadence) error

	// SyncEntity runs push and pull of one entity.
	SyncEntity(ctx context.Context, name string) error

	// PushEntity runs the push of one entity.
	PushEntity(ctx context.Context, name string) error

	// PullEntity runs the pull of one entity.
	PullEntity(ctx context.Context, name string) error

	// LastSync returns the outcome of the most recent run of an entity.
	LastSync(name string) (SyncReport, bool)
}

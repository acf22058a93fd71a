// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-record-sync/internal/modelsync"
)

// LocalRecordRepository is the agent's store of one entity type. Besides the
// sync contract it lets the owning feature author records and read them back.
type LocalRecordRepository[T modelsync.Record] interface {
	modelsync.SynchronizableRepository[T]

	// Save writes locally authored records as PENDING, replacing any local
	// copy with the same id.
	Save(ctx context.Context, records ...T) error

	// Get returns the local copy of one record.
	Get(ctx context.Context, id string) (T, error)
}

// CursorStoreFactory hands out the pull cursor slot of an entity.
type CursorStoreFactory interface {
	CursorStore(entity string) modelsync.CursorStore
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package modelsync

import (
	"context"

	"github.com/MKhiriev/go-record-sync/models"
)

// Record is a locally stored entity that takes part in synchronization.
// RecordID must be globally unique and stable across push and pull.
type Record interface {
	RecordID() string
}

// SynchronizableRepository is the local-store contract consumed by the
// [Coordinator]. Each entity owns an independent instance.
type SynchronizableRepository[T Record] interface {
	// RecordsWithStatus returns every local record currently in status.
	RecordsWithStatus(ctx context.Context, status models.SyncStatus) ([]T, error)

	// SetStatus applies every change in one atomic write: either all listed
	// records move to their new status or none does.
	SetStatus(ctx context.Context, changes ...models.StatusChange) error

	// Upsert inserts or replaces records by identifier. It is only used by pull.
	Upsert(ctx context.Context, records []T) error
}

// CursorStore is a durable slot holding the pull position of one entity.
type CursorStore interface {
	// Get returns the stored cursor. found is false when nothing has been
	// pulled yet, which means "pull from the beginning".
	Get(ctx context.Context) (cursor string, found bool, err error)

	// Set overwrites the stored cursor.
	Set(ctx context.Context, cursor string) error
}

// PushFunc sends records to the remote service and returns the per-record
// validation rejections. An empty result means every record was accepted.
type PushFunc[T Record] func(ctx context.Context, records []T) ([]models.ValidationError, error)

// PullFunc fetches at most batchSize remote records following cursor.
// A nil cursor requests the first page.
type PullFunc[T Record] func(ctx context.Context, batchSize int, cursor *string) (PullPage[T], error)

// PullPage is one page of remote changes already translated into local records.
type PullPage[T Record] struct {
	// Records are the remote records in server order.
	Records []T

	// NextCursor is the resumption token to persist once Records are stored.
	NextCursor string

	// Final marks the page as the end of the available data, even when it is full.
	Final bool
}

// Transport is the remote API of one entity type. Implementations translate
// between local records and wire payloads.
type Transport[T Record] interface {
	Push(ctx context.Context, records []T) ([]models.ValidationError, error)
	Pull(ctx context.Context, batchSize int, cursor *string) (PullPage[T], error)
}

// ModelSync is the type-erased view of an [EntitySync] used by orchestrators
// that handle many entity types at once.
//
//go:generate mockgen -destination=../mock/model_sync_mock.go -package=mock github.com/MKhiriev/go-record-sync/internal/modelsync ModelSync
type ModelSync interface {
	// Name is the human-readable entity name used in diagnostics and locks.
	Name() string

	// Config returns the immutable sync configuration of the entity.
	Config() Config

	// RequiresApprovedSession reports whether the entity may only sync while
	// the current session is approved.
	RequiresApprovedSession() bool

	// Push uploads the pending records of the entity.
	Push(ctx context.Context) error

	// Pull downloads remote changes of the entity.
	Pull(ctx context.Context) error

	// Sync runs Push and Pull concurrently and reports both outcomes.
	Sync(ctx context.Context) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-record-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_record_repository_mock.go -package=mock

// ErrorClassificator decides whether a failed database operation is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SyncRecordRepository is the server-side record store. Records are kept as
// opaque payloads per entity and served in (server_updated_at, id) order.
type SyncRecordRepository interface {
	// SaveRecords inserts or replaces records by (entity, id) and stamps them
	// with a new server change time.
	SaveRecords(ctx context.Context, entity string, records []models.SyncRecord) error

	// RecordsAfter returns up to limit records of entity ordered after key.
	RecordsAfter(ctx context.Context, entity string, key models.PageKey, limit int) ([]models.SyncRecord, error)
}

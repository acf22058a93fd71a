// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/models"
)

// syncRecordRepository is the PostgreSQL-backed implementation of
// [SyncRecordRepository]. Records of every entity share the sync_records
// table and are told apart by the entity column.
type syncRecordRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSyncRecordRepository constructs a [SyncRecordRepository] backed by db.
func NewSyncRecordRepository(db *DB, log *logger.Logger) SyncRecordRepository {
	return &syncRecordRepository{
		DB:     db,
		logger: log,
		now:    time.Now,
	}
}

// SaveRecords writes records in chunks of [saveChunkSize] rows inside one
// transaction, so a push is stored entirely or not at all. All of them receive
// the same change time; PostgreSQL keeps microseconds, so the stamp is
// truncated up front to let page keys built from it compare equal to the
// stored value.
func (r *syncRecordRepository) SaveRecords(ctx context.Context, entity string, records []models.SyncRecord) error {
	if len(records) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	stamp := r.now().UTC().Truncate(time.Microsecond)
	stamped := make([]models.SyncRecord, 0, len(records))
	for _, rec := range records {
		rec.ServerUpdatedAt = stamp
		stamped = append(stamped, rec)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "syncRecordRepository.SaveRecords").Str("entity", entity).Msg("failed to begin transaction")
		return classifyStoreError(r.errorClassificator, fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer tx.Rollback()

	for start := 0; start < len(stamped); start += saveChunkSize {
		end := min(start+saveChunkSize, len(stamped))

		query, args, err := buildSaveSyncRecordsQuery(entity, stamped[start:end])
		if err != nil {
			log.Err(err).Str("func", "syncRecordRepository.SaveRecords").Str("entity", entity).Msg("failed to create query")
			return err
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "syncRecordRepository.SaveRecords").
				Str("entity", entity).
				Int("records", end-start).
				Msg("failed to save records")
			return classifyStoreError(r.errorClassificator, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "syncRecordRepository.SaveRecords").Str("entity", entity).Msg("failed to commit transaction")
		return classifyStoreError(r.errorClassificator, fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	return nil
}

// RecordsAfter returns up to limit records of entity that follow key in
// (server_updated_at, id) order. A zero key starts from the beginning.
func (r *syncRecordRepository) RecordsAfter(ctx context.Context, entity string, key models.PageKey, limit int) ([]models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecordsAfterQuery(entity, key, limit)
	if err != nil {
		log.Err(err).Str("func", "syncRecordRepository.RecordsAfter").Str("entity", entity).Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncRecordRepository.RecordsAfter").
			Str("entity", entity).
			Int("limit", limit).
			Msg("failed to execute query")
		return nil, classifyStoreError(r.errorClassificator, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	results := make([]models.SyncRecord, 0, limit)
	for rows.Next() {
		var rec models.SyncRecord
		var payload []byte
		if scanErr := rows.Scan(&rec.Entity, &rec.ID, &payload, &rec.ServerUpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "syncRecordRepository.RecordsAfter").Str("entity", entity).Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		rec.Payload = payload
		rec.ServerUpdatedAt = rec.ServerUpdatedAt.UTC()
		results = append(results, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "syncRecordRepository.RecordsAfter").Str("entity", entity).Msg("error occurred during rows iteration")
		return nil, classifyStoreError(r.errorClassificator, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr))
	}

	return results, nil
}

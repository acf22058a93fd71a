// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/modelsync"
	"github.com/MKhiriev/go-record-sync/models"
)

// sqlRepository is the SQLite-backed implementation of
// [LocalRecordRepository]. One generic implementation serves every entity;
// the per-entity layout comes from its [recordTable].
type sqlRepository[T modelsync.Record] struct {
	*DB
	table  recordTable[T]
	logger *logger.Logger
}

func newSQLRepository[T modelsync.Record](db *DB, table recordTable[T], log *logger.Logger) *sqlRepository[T] {
	return &sqlRepository[T]{
		DB:     db,
		table:  table,
		logger: log,
	}
}

// NewBloodSugarRepository returns the local repository of blood sugar measurements.
func NewBloodSugarRepository(db *DB, log *logger.Logger) LocalRecordRepository[models.BloodSugarMeasurement] {
	return newSQLRepository(db, bloodSugarTable, log)
}

// NewMedicalHistoryRepository returns the local repository of medical histories.
func NewMedicalHistoryRepository(db *DB, log *logger.Logger) LocalRecordRepository[models.MedicalHistory] {
	return newSQLRepository(db, medicalHistoryTable, log)
}

// NewFacilityRepository returns the local repository of facilities.
func NewFacilityRepository(db *DB, log *logger.Logger) LocalRecordRepository[models.Facility] {
	return newSQLRepository(db, facilityTable, log)
}

// RecordsWithStatus returns the records in status ordered by update time.
// The lookup is served by the sync_status index.
func (r *sqlRepository[T]) RecordsWithStatus(ctx context.Context, status models.SyncStatus) ([]T, error) {
	query, args, err := buildSelectByStatusQuery(r.table.name, r.table.columns, status)
	if err != nil {
		r.logger.Err(err).Str("func", "sqlRepository.RecordsWithStatus").Str("table", r.table.name).Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "sqlRepository.RecordsWithStatus").
			Str("table", r.table.name).
			Str("status", string(status)).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0, 50)
	for rows.Next() {
		record, scanErr := r.table.scan(rows)
		if scanErr != nil {
			r.logger.Err(scanErr).Str("func", "sqlRepository.RecordsWithStatus").Str("table", r.table.name).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		r.logger.Err(rowsErr).Str("func", "sqlRepository.RecordsWithStatus").Str("table", r.table.name).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// SetStatus applies every change inside one transaction.
func (r *sqlRepository[T]) SetStatus(ctx context.Context, changes ...models.StatusChange) error {
	for _, ch := range changes {
		if !ch.Status.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, ch.Status)
		}
	}

	return r.inTx(ctx, "sqlRepository.SetStatus", func(tx *sql.Tx) error {
		for _, ch := range changes {
			if len(ch.IDs) == 0 {
				continue
			}

			query, args, err := buildSetStatusQuery(r.table.name, ch.IDs, ch.Status)
			if err != nil {
				return err
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				r.logger.Err(err).
					Str("func", "sqlRepository.SetStatus").
					Str("table", r.table.name).
					Str("status", string(ch.Status)).
					Int("ids", len(ch.IDs)).
					Msg("failed to update sync status")
				return classifyStoreError(r.errorClassificator, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
			}
		}
		return nil
	})
}

// Upsert stores pulled records. Local rows that are still PENDING win over
// the pulled copy.
func (r *sqlRepository[T]) Upsert(ctx context.Context, records []T) error {
	return r.write(ctx, "sqlRepository.Upsert", records, true)
}

// Save stores locally authored records as PENDING.
func (r *sqlRepository[T]) Save(ctx context.Context, records ...T) error {
	pending := make([]T, 0, len(records))
	for _, rec := range records {
		pending = append(pending, r.table.pending(rec))
	}
	return r.write(ctx, "sqlRepository.Save", pending, false)
}

// Get returns the local copy of the record with id.
func (r *sqlRepository[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	query, args, err := buildSelectByIDQuery(r.table.name, r.table.columns, id)
	if err != nil {
		return zero, err
	}

	record, err := r.table.scan(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, fmt.Errorf("%w: %s %q", ErrRecordNotFound, r.table.name, id)
	}
	if err != nil {
		r.logger.Err(err).Str("func", "sqlRepository.Get").Str("table", r.table.name).Str("id", id).Msg("failed to scan row")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *sqlRepository[T]) write(ctx context.Context, fn string, records []T, keepPending bool) error {
	if len(records) == 0 {
		return nil
	}

	return r.inTx(ctx, fn, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += upsertChunkSize {
			end := min(start+upsertChunkSize, len(records))

			rows := make([][]any, 0, end-start)
			for _, rec := range records[start:end] {
				rows = append(rows, r.table.values(rec))
			}

			query, args, err := buildUpsertQuery(r.table.name, r.table.columns, rows, keepPending)
			if err != nil {
				return err
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				r.logger.Err(err).Str("func", fn).Str("table", r.table.name).Int("records", end-start).Msg("failed to write records")
				return classifyStoreError(r.errorClassificator, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
			}
		}
		return nil
	})
}

// inTx runs fn in a transaction that is committed only when fn succeeds.
func (r *sqlRepository[T]) inTx(ctx context.Context, fn string, body func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", fn).Msg("failed to begin transaction")
		return classifyStoreError(r.errorClassificator, fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer tx.Rollback()

	if err = body(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", fn).Msg("failed to commit transaction")
		return classifyStoreError(r.errorClassificator, fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}
	return nil
}

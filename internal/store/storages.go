// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
)

// Storages groups the reference server's repositories.
type Storages struct {
	SyncRecords SyncRecordRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// server repositories.
func NewStorages(ctx context.Context, cfg config.ServerStorage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		SyncRecords: NewSyncRecordRepository(db, log),
		db:          db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}

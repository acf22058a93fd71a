// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/models"
)

// ClientStorages groups every agent-side repository and the pull cursor
// slots into a single value that is handed to the sync wiring.
type ClientStorages struct {
	BloodSugars      LocalRecordRepository[models.BloodSugarMeasurement]
	MedicalHistories LocalRecordRepository[models.MedicalHistory]
	Facilities       LocalRecordRepository[models.Facility]

	// Cursors hands out the pull cursor slot of each entity.
	Cursors CursorStoreFactory

	db *DB
}

// NewClientStorages initialises the agent storage layer:
//  1. opens the SQLite file at cfg.DB.DSN, creating it when missing;
//  2. applies pending schema migrations;
//  3. builds one repository per entity.
//
// Pull cursors are kept in the database unless cfg.CursorFile names a JSON
// file to hold them instead.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, cfg, log), nil
}

func newClientStorages(db *DB, cfg config.ClientStorage, log *logger.Logger) *ClientStorages {
	var cursors CursorStoreFactory = NewSQLCursors(db, log)
	if cfg.CursorFile != "" {
		cursors = NewFileCursors(cfg.CursorFile, log)
	}

	return &ClientStorages{
		BloodSugars:      NewBloodSugarRepository(db, log),
		MedicalHistories: NewMedicalHistoryRepository(db, log),
		Facilities:       NewFacilityRepository(db, log),
		Cursors:          cursors,
		db:               db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/modelsync"
)

// SQLCursors keeps pull cursors in the pull_cursors table of the local
// database, one row per entity.
type SQLCursors struct {
	*DB
	logger *logger.Logger
}

// NewSQLCursors returns cursor slots backed by db.
func NewSQLCursors(db *DB, log *logger.Logger) *SQLCursors {
	return &SQLCursors{DB: db, logger: log}
}

// CursorStore returns the cursor slot of entity.
func (s *SQLCursors) CursorStore(entity string) modelsync.CursorStore {
	return &sqlCursorStore{cursors: s, entity: entity}
}

type sqlCursorStore struct {
	cursors *SQLCursors
	entity  string
}

func (c *sqlCursorStore) Get(ctx context.Context) (string, bool, error) {
	query, args, err := buildGetCursorQuery(c.entity)
	if err != nil {
		return "", false, err
	}

	var cursor string
	err = c.cursors.DB.QueryRowContext(ctx, query, args...).Scan(&cursor)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		c.cursors.logger.Err(err).
			Str("func", "sqlCursorStore.Get").
			Str("entity", c.entity).
			Msg("failed to read pull cursor")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cursor, true, nil
}

func (c *sqlCursorStore) Set(ctx context.Context, cursor string) error {
	query, args, err := buildSetCursorQuery(c.entity, cursor, time.Now().UTC())
	if err != nil {
		return err
	}

	if _, err = c.cursors.DB.ExecContext(ctx, query, args...); err != nil {
		c.cursors.logger.Err(err).
			Str("func", "sqlCursorStore.Set").
			Str("entity", c.entity).
			Msg("failed to store pull cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/migrations"
)

// DB wraps a database connection together with the schema it belongs to.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrate            func(*sql.DB, *logger.Logger) error
}

// Migrate applies the embedded schema matching the connection's database.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return migrations.MigrateClient(db.DB, db.logger)
	}
	return db.migrate(db.DB, db.logger)
}

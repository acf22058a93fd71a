// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the database schemas of the sync agent and the
// reference server and applies them with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-record-sync/internal/logger"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// ErrNilDB is returned when a migration is requested without a connection.
var ErrNilDB = errors.New("db is nil")

// MigrateClient applies the agent schema to a SQLite database. Progress is
// logged to log; a nil log discards it.
func MigrateClient(db *sql.DB, log *logger.Logger) error {
	return migrate(db, log, "sqlite3", "client")
}

// MigrateServer applies the server schema to a PostgreSQL database.
func MigrateServer(db *sql.DB, log *logger.Logger) error {
	return migrate(db, log, "pgx", "server")
}

func migrate(db *sql.DB, log *logger.Logger, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	defer goose.SetBaseFS(nil)

	goose.SetLogger(newGooseLogger(log))
	defer goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

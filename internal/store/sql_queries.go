// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-record-sync/models"
)

// sqliteBuilder builds queries for the agent's SQLite database.
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// postgresBuilder builds queries for the server's PostgreSQL database.
var postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// upsertChunkSize bounds the rows of one multi-row INSERT so the statement
// stays under SQLite's bound parameter limit.
const upsertChunkSize = 100

// saveChunkSize bounds the rows of one sync_records INSERT. Each row binds
// four parameters and PostgreSQL accepts at most 65535 per statement.
const saveChunkSize = 1000

func buildSelectByStatusQuery(table string, columns []string, status models.SyncStatus) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"sync_status": string(status)}).
		OrderBy("updated_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectByIDQuery(table string, columns []string, id string) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSetStatusQuery(table string, ids []string, status models.SyncStatus) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Update(table).
		Set("sync_status", string(status)).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertQuery builds a multi-row insert that replaces existing rows by id.
// With keepPending set, rows that are PENDING locally are left untouched, so
// a pulled copy never overwrites an edit that has not been pushed yet.
func buildUpsertQuery(table string, columns []string, rows [][]any, keepPending bool) (string, []any, error) {
	insert := sqliteBuilder.Insert(table).Columns(columns...)
	for _, row := range rows {
		insert = insert.Values(row...)
	}

	updates := make([]string, 0, len(columns)-1)
	for _, col := range columns[1:] {
		updates = append(updates, fmt.Sprintf("%s = excluded.%s", col, col))
	}
	suffix := "ON CONFLICT(id) DO UPDATE SET " + strings.Join(updates, ", ")

	var suffixArgs []any
	if keepPending {
		suffix += fmt.Sprintf(" WHERE %s.sync_status <> ?", table)
		suffixArgs = append(suffixArgs, string(models.SyncStatusPending))
	}

	query, args, err := insert.Suffix(suffix, suffixArgs...).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetCursorQuery(entity string) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select("cursor").
		From("pull_cursors").
		Where(sq.Eq{"entity": entity}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSetCursorQuery(entity, cursor string, updatedAt any) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Insert("pull_cursors").
		Columns("entity", "cursor", "updated_at").
		Values(entity, cursor, updatedAt).
		Suffix("ON CONFLICT(entity) DO UPDATE SET cursor = excluded.cursor, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSaveSyncRecordsQuery(entity string, records []models.SyncRecord) (string, []any, error) {
	insert := postgresBuilder.
		Insert("sync_records").
		Columns("entity", "id", "payload", "server_updated_at")
	for _, r := range records {
		insert = insert.Values(entity, r.ID, []byte(r.Payload), r.ServerUpdatedAt)
	}

	query, args, err := insert.
		Suffix("ON CONFLICT (entity, id) DO UPDATE SET payload = EXCLUDED.payload, server_updated_at = EXCLUDED.server_updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildRecordsAfterQuery(entity string, key models.PageKey, limit int) (string, []any, error) {
	builder := postgresBuilder.
		Select("entity", "id", "payload", "server_updated_at").
		From("sync_records").
		Where(sq.Eq{"entity": entity})

	if !key.IsZero() {
		builder = builder.Where(sq.Expr("(server_updated_at, id) > (?, ?)", key.UpdatedAt, key.ID))
	}

	query, args, err := builder.
		OrderBy("server_updated_at", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

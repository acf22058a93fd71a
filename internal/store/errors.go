// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a record looked up by id does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrInvalidStatus is returned when a status change names an unknown status.
	ErrInvalidStatus = errors.New("invalid sync status")

	// ErrTemporary marks a failure the database reports as transient
	// (lost connection, serialization failure, deadlock).
	ErrTemporary = errors.New("temporary storage failure")

	// ErrCorruptCursorFile is returned when the cursor file cannot be decoded.
	ErrCorruptCursorFile = errors.New("cursor file is corrupt")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when iterating a multi-row result fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan record rows")
)

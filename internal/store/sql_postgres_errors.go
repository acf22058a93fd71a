// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed store operation is worth
// repeating. A retryable failure surfaces as [ErrTemporary], which the server
// answers with 503 and the agent repeats on its next cycle.
type ErrorClassification int

const (
	// NonRetryable is the classification of every error not known to be transient.
	NonRetryable ErrorClassification = iota
	// Retryable marks connection losses, rolled back transactions and lock contention.
	Retryable
)

// transientPgCodes lists the SQLSTATE codes a repeated request may get past.
// Every other code, including constraint and syntax violations, is final.
var transientPgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.LockNotAvailable:       {},
	pgerrcode.CannotConnectNow:       {},
	pgerrcode.AdminShutdown:          {},
	pgerrcode.TooManyConnections:     {},
}

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify looks for a *pgconn.PgError anywhere in the chain of err.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE code to its classification.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if pgErr == nil {
		return NonRetryable
	}
	if _, ok := transientPgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}

// classifyStoreError wraps err with [ErrTemporary] when classifier considers
// it retryable. A nil classifier leaves err untouched.
func classifyStoreError(classifier ErrorClassificator, err error) error {
	if classifier == nil || err == nil {
		return err
	}
	if classifier.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTemporary, err)
	}
	return err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package modelsync

import (
	"errors"
	"fmt"
)

var (
	// ErrProtocolViolation is the parent of every error caused by a remote
	// response that breaks the push/pull contract. Nothing is written locally
	// when it is returned.
	ErrProtocolViolation = errors.New("sync protocol violation")

	// ErrUnknownRecord is returned when a validation error references a record
	// that was not part of the pushed batch.
	ErrUnknownRecord = fmt.Errorf("%w: validation error for a record outside the batch", ErrProtocolViolation)

	// ErrDuplicateValidationError is returned when the same record is rejected
	// more than once in one push response.
	ErrDuplicateValidationError = fmt.Errorf("%w: record rejected more than once", ErrProtocolViolation)

	// ErrEmptyValidationMessages is returned when a validation error carries no reasons.
	ErrEmptyValidationMessages = fmt.Errorf("%w: validation error without messages", ErrProtocolViolation)

	// ErrMalformedPage is returned when a pull page cannot be applied safely.
	ErrMalformedPage = fmt.Errorf("%w: malformed pull page", ErrProtocolViolation)

	// ErrTransport wraps failures of the remote call itself. The whole call is
	// retried on the next cycle.
	ErrTransport = errors.New("sync transport failure")

	// ErrInvalidBatchSize is returned when a pull is requested with a
	// non-positive batch size.
	ErrInvalidBatchSize = errors.New("batch size must be positive")

	// ErrInvalidCadence is returned by [Config.Validate] for an unknown cadence tier.
	ErrInvalidCadence = errors.New("unknown sync cadence")

	// ErrMissingDependency is returned by [NewEntitySync] when a collaborator is nil.
	ErrMissingDependency = errors.New("entity sync dependency is nil")
)

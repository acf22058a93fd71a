// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Agent orchestration errors.
var (
	ErrMissingDependency  = errors.New("service dependency is nil")
	ErrDuplicateEntity    = errors.New("entity is registered twice")
	ErrUnknownEntity      = errors.New("unknown entity")
	ErrSessionNotApproved = errors.New("session is not approved for sync")

	// ErrSyncInProgress is returned when a trigger finds the entity already
	// being synced by another trigger. The run is skipped, not queued.
	ErrSyncInProgress = errors.New("sync already in progress")
)

// Server errors.
var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnknownResource     = errors.New("unknown resource")
	ErrInvalidLimit        = errors.New("limit must be positive")
	ErrInvalidProcessToken = errors.New("invalid process token")
	ErrNoRecordsProvided   = errors.New("no records provided")
	ErrRecordWithoutID     = errors.New("pushed record has no id")
)

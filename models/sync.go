// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStatus is the push lifecycle state of the local copy of a record.
// The remote service has no notion of it.
type SyncStatus string

const (
	// SyncStatusPending marks a record authored or edited locally that has not
	// been acknowledged by the server yet.
	SyncStatusPending SyncStatus = "PENDING"

	// SyncStatusDone marks a record that is known to the server: it was either
	// acknowledged by a push or arrived through a pull.
	SyncStatusDone SyncStatus = "DONE"

	// SyncStatusInvalid marks a record rejected by server-side validation.
	// Such records are excluded from push until the owning feature resets them.
	SyncStatusInvalid SyncStatus = "INVALID"
)

// IsValid reports whether s is one of the known statuses.
func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncStatusPending, SyncStatusDone, SyncStatusInvalid:
		return true
	}
	return false
}

// StatusChange moves every record listed in IDs to Status.
// Several changes passed together are applied as one atomic write.
type StatusChange struct {
	IDs    []string
	Status SyncStatus
}

// ValidationError is a per-record rejection returned by the server in response
// to a push. Messages is never empty.
type ValidationError struct {
	// ID is the identifier of the rejected record. It always refers to a record
	// that was part of the pushed batch.
	ID string `json:"id"`

	// Messages holds the human-readable reasons of the rejection.
	Messages []string `json:"schema"`
}

// PushRequest is the body of a push call for one entity type.
type PushRequest[P any] struct {
	Records []P `json:"records"`
}

// PushResponse is the body returned by a push call. An empty Errors list means
// every record of the batch was accepted.
type PushResponse struct {
	Errors []ValidationError `json:"errors"`
}

// PullResponse is one page of remote changes for one entity type.
type PullResponse[P any] struct {
	// Records are the remote records of the page, in server order.
	Records []P `json:"records"`

	// ProcessToken is the opaque cursor to send with the next pull request.
	ProcessToken string `json:"process_token"`
}

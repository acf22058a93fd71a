// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// SyncRecord is a record as kept by the reference server: an opaque payload
// addressed by entity and identifier, stamped with the server-side change time
// that drives pull ordering.
type SyncRecord struct {
	Entity          string
	ID              string
	Payload         json.RawMessage
	ServerUpdatedAt time.Time
}

// PageKey is the keyset position of a pull page: every record ordered after
// (UpdatedAt, ID) belongs to the next page. The zero value means "from the
// beginning".
type PageKey struct {
	UpdatedAt time.Time `json:"u"`
	ID        string    `json:"i"`
}

// IsZero reports whether k points at the beginning of the data.
func (k PageKey) IsZero() bool {
	return k.UpdatedAt.IsZero() && k.ID == ""
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Facility is a health facility the user may be assigned to. Facilities are
// authored on the server, so their local copies almost never become PENDING.
type Facility struct {
	ID         string
	Name       string
	District   string
	State      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
	SyncStatus SyncStatus
}

// RecordID returns the globally unique identifier of the facility.
func (f Facility) RecordID() string {
	return f.ID
}

// FacilityPayload is the wire representation of [Facility].
type FacilityPayload struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	District  string     `json:"district"`
	State     string     `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func (f Facility) ToPayload() FacilityPayload {
	return FacilityPayload{
		ID:        f.ID,
		Name:      f.Name,
		District:  f.District,
		State:     f.State,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
		DeletedAt: f.DeletedAt,
	}
}

func FacilityFromPayload(p FacilityPayload) Facility {
	return Facility{
		ID:         p.ID,
		Name:       p.Name,
		District:   p.District,
		State:      p.State,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		DeletedAt:  p.DeletedAt,
		SyncStatus: SyncStatusDone,
	}
}

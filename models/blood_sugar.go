// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BloodSugarReadingType is the kind of blood sugar test a measurement comes from.
type BloodSugarReadingType string

const (
	ReadingRandom       BloodSugarReadingType = "random"
	ReadingPostPrandial BloodSugarReadingType = "post_prandial"
	ReadingFasting      BloodSugarReadingType = "fasting"
	ReadingHbA1c        BloodSugarReadingType = "hba1c"
)

// BloodSugarMeasurement is the local copy of a blood sugar reading taken for a patient.
type BloodSugarMeasurement struct {
	ID           string
	PatientID    string
	ReadingType  BloodSugarReadingType
	ReadingValue float64
	RecordedAt   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
	SyncStatus   SyncStatus
}

// RecordID returns the globally unique identifier of the measurement.
func (m BloodSugarMeasurement) RecordID() string {
	return m.ID
}

// BloodSugarPayload is the wire representation of [BloodSugarMeasurement].
type BloodSugarPayload struct {
	ID           string                `json:"id"`
	PatientID    string                `json:"patient_id"`
	ReadingType  BloodSugarReadingType `json:"blood_sugar_type"`
	ReadingValue float64               `json:"blood_sugar_value"`
	RecordedAt   time.Time             `json:"recorded_at"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	DeletedAt    *time.Time            `json:"deleted_at,omitempty"`
}

// ToPayload translates the local measurement into its wire form.
func (m BloodSugarMeasurement) ToPayload() BloodSugarPayload {
	return BloodSugarPayload{
		ID:           m.ID,
		PatientID:    m.PatientID,
		ReadingType:  m.ReadingType,
		ReadingValue: m.ReadingValue,
		RecordedAt:   m.RecordedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    m.DeletedAt,
	}
}

// BloodSugarFromPayload builds the local copy of a pulled measurement.
// Server-originated records are already reconciled, so they are stored as DONE.
func BloodSugarFromPayload(p BloodSugarPayload) BloodSugarMeasurement {
	return BloodSugarMeasurement{
		ID:           p.ID,
		PatientID:    p.PatientID,
		ReadingType:  p.ReadingType,
		ReadingValue: p.ReadingValue,
		RecordedAt:   p.RecordedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		DeletedAt:    p.DeletedAt,
		SyncStatus:   SyncStatusDone,
	}
}

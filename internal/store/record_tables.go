// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/modelsync"
	"github.com/MKhiriev/go-record-sync/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// recordTable describes how one entity type is laid out in SQLite.
// columns always start with "id" and end with "sync_status"; values returns
// arguments in the same order.
type recordTable[T modelsync.Record] struct {
	name    string
	columns []string
	values  func(T) []any
	scan    func(rowScanner) (T, error)
	pending func(T) T
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

var bloodSugarTable = recordTable[models.BloodSugarMeasurement]{
	name: "blood_sugar_measurements",
	columns: []string{
		"id", "patient_id", "reading_type", "reading_value", "recorded_at",
		"created_at", "updated_at", "deleted_at", "sync_status",
	},
	values: func(m models.BloodSugarMeasurement) []any {
		return []any{
			m.ID, m.PatientID, string(m.ReadingType), m.ReadingValue, m.RecordedAt.UTC(),
			m.CreatedAt.UTC(), m.UpdatedAt.UTC(), nullTime(m.DeletedAt), string(m.SyncStatus),
		}
	},
	scan: func(row rowScanner) (models.BloodSugarMeasurement, error) {
		var m models.BloodSugarMeasurement
		var deletedAt sql.NullTime
		err := row.Scan(
			&m.ID, &m.PatientID, &m.ReadingType, &m.ReadingValue, &m.RecordedAt,
			&m.CreatedAt, &m.UpdatedAt, &deletedAt, &m.SyncStatus,
		)
		m.DeletedAt = timePtr(deletedAt)
		return m, err
	},
	pending: func(m models.BloodSugarMeasurement) models.BloodSugarMeasurement {
		m.SyncStatus = models.SyncStatusPending
		return m
	},
}

var medicalHistoryTable = recordTable[models.MedicalHistory]{
	name: "medical_histories",
	columns: []string{
		"id", "patient_id", "diagnosed_with_hypertension", "is_on_treatment_for_hypertension",
		"has_had_heart_attack", "has_had_stroke", "has_had_kidney_disease", "diagnosed_with_diabetes",
		"created_at", "updated_at", "deleted_at", "sync_status",
	},
	values: func(h models.MedicalHistory) []any {
		return []any{
			h.ID, h.PatientID, string(h.DiagnosedWithHypertension), string(h.IsOnTreatmentForHypertension),
			string(h.HasHadHeartAttack), string(h.HasHadStroke), string(h.HasHadKidneyDisease), string(h.DiagnosedWithDiabetes),
			h.CreatedAt.UTC(), h.UpdatedAt.UTC(), nullTime(h.DeletedAt), string(h.SyncStatus),
		}
	},
	scan: func(row rowScanner) (models.MedicalHistory, error) {
		var h models.MedicalHistory
		var deletedAt sql.NullTime
		err := row.Scan(
			&h.ID, &h.PatientID, &h.DiagnosedWithHypertension, &h.IsOnTreatmentForHypertension,
			&h.HasHadHeartAttack, &h.HasHadStroke, &h.HasHadKidneyDisease, &h.DiagnosedWithDiabetes,
			&h.CreatedAt, &h.UpdatedAt, &deletedAt, &h.SyncStatus,
		)
		h.DeletedAt = timePtr(deletedAt)
		return h, err
	},
	pending: func(h models.MedicalHistory) models.MedicalHistory {
		h.SyncStatus = models.SyncStatusPending
		return h
	},
}

var facilityTable = recordTable[models.Facility]{
	name: "facilities",
	columns: []string{
		"id", "name", "district", "state", "created_at", "updated_at", "deleted_at", "sync_status",
	},
	values: func(f models.Facility) []any {
		return []any{
			f.ID, f.Name, f.District, f.State, f.CreatedAt.UTC(), f.UpdatedAt.UTC(),
			nullTime(f.DeletedAt), string(f.SyncStatus),
		}
	},
	scan: func(row rowScanner) (models.Facility, error) {
		var f models.Facility
		var deletedAt sql.NullTime
		err := row.Scan(
			&f.ID, &f.Name, &f.District, &f.State, &f.CreatedAt, &f.UpdatedAt, &deletedAt, &f.SyncStatus,
		)
		f.DeletedAt = timePtr(deletedAt)
		return f, err
	},
	pending: func(f models.Facility) models.Facility {
		f.SyncStatus = models.SyncStatusPending
		return f
	},
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Answer is a tri-state response to a medical history question.
type Answer string

const (
	AnswerYes        Answer = "yes"
	AnswerNo         Answer = "no"
	AnswerUnanswered Answer = "unknown"
)

// MedicalHistory is the local copy of the medical history of one patient.
type MedicalHistory struct {
	ID                           string
	PatientID                    string
	DiagnosedWithHypertension    Answer
	IsOnTreatmentForHypertension Answer
	HasHadHeartAttack            Answer
	HasHadStroke                 Answer
	HasHadKidneyDisease          Answer
	DiagnosedWithDiabetes        Answer
	CreatedAt                    time.Time
	UpdatedAt                    time.Time
	DeletedAt                    *time.Time
	SyncStatus                   SyncStatus
}

// RecordID returns the globally unique identifier of the history.
func (h MedicalHistory) RecordID() string {
	return h.ID
}

// MedicalHistoryPayload is the wire representation of [MedicalHistory].
type MedicalHistoryPayload struct {
	ID                           string     `json:"id"`
	PatientID                    string     `json:"patient_id"`
	DiagnosedWithHypertension    Answer     `json:"diagnosed_with_hypertension"`
	IsOnTreatmentForHypertension Answer     `json:"is_on_treatment_for_hypertension"`
	HasHadHeartAttack            Answer     `json:"prior_heart_attack"`
	HasHadStroke                 Answer     `json:"prior_stroke"`
	HasHadKidneyDisease          Answer     `json:"chronic_kidney_disease"`
	HasDiabetes                  Answer     `json:"diabetes"`
	HasHypertension              Answer     `json:"hypertension"`
	CreatedAt                    time.Time  `json:"created_at"`
	UpdatedAt                    time.Time  `json:"updated_at"`
	DeletedAt                    *time.Time `json:"deleted_at,omitempty"`
}

// ToPayload translates the local history into its wire form. The server keeps
// the legacy hypertension field, which mirrors the diagnosis answer.
func (h MedicalHistory) ToPayload() MedicalHistoryPayload {
	return MedicalHistoryPayload{
		ID:                           h.ID,
		PatientID:                    h.PatientID,
		DiagnosedWithHypertension:    h.DiagnosedWithHypertension,
		IsOnTreatmentForHypertension: h.IsOnTreatmentForHypertension,
		HasHadHeartAttack:            h.HasHadHeartAttack,
		HasHadStroke:                 h.HasHadStroke,
		HasHadKidneyDisease:          h.HasHadKidneyDisease,
		HasDiabetes:                  h.DiagnosedWithDiabetes,
		HasHypertension:              h.DiagnosedWithHypertension,
		CreatedAt:                    h.CreatedAt,
		UpdatedAt:                    h.UpdatedAt,
		DeletedAt:                    h.DeletedAt,
	}
}

// MedicalHistoryFromPayload builds the local copy of a pulled history.
func MedicalHistoryFromPayload(p MedicalHistoryPayload) MedicalHistory {
	return MedicalHistory{
		ID:                           p.ID,
		PatientID:                    p.PatientID,
		DiagnosedWithHypertension:    p.DiagnosedWithHypertension,
		IsOnTreatmentForHypertension: p.IsOnTreatmentForHypertension,
		HasHadHeartAttack:            p.HasHadHeartAttack,
		HasHadStroke:                 p.HasHadStroke,
		HasHadKidneyDisease:          p.HasHadKidneyDisease,
		DiagnosedWithDiabetes:        p.HasDiabetes,
		CreatedAt:                    p.CreatedAt,
		UpdatedAt:                    p.UpdatedAt,
		DeletedAt:                    p.DeletedAt,
		SyncStatus:                   SyncStatusDone,
	}
}

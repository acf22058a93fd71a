// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-record-sync/models"
	"github.com/google/uuid"
)

// Field names accepted by [RecordValidator.Validate] for field-level scoping.
const (
	FieldID           = "id"
	FieldPatientID    = "patient_id"
	FieldReadingType  = "blood_sugar_type"
	FieldReadingValue = "blood_sugar_value"
	FieldRecordedAt   = "recorded_at"
	FieldTimestamps   = "timestamps"
	FieldAnswers      = "answers"
	FieldName         = "name"
)

// Blood sugar values are in mg/dL except HbA1c, which is a percentage.
const (
	maxGlucoseValue = 1000
	maxHbA1cValue   = 25
)

var allowedReadingTypes = []models.BloodSugarReadingType{
	models.ReadingRandom,
	models.ReadingPostPrandial,
	models.ReadingFasting,
	models.ReadingHbA1c,
}

var allowedAnswers = []models.Answer{
	models.AnswerYes,
	models.AnswerNo,
	models.AnswerUnanswered,
}

// RecordValidator validates the wire payloads of every synchronized entity.
// Both value and pointer forms are accepted.
type RecordValidator struct{}

// NewRecordValidator returns the payload validator as a [Validator].
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches on the dynamic type of obj. It returns
// ErrUnsupportedType for unknown types and ErrUnknownField when a requested
// field does not apply to the type. Otherwise every failed check is joined
// into the returned error; use [Messages] to split it.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BloodSugarPayload:
		return v.validateBloodSugar(ctx, value, fields...)
	case *models.BloodSugarPayload:
		return v.validateBloodSugar(ctx, *value, fields...)

	case models.MedicalHistoryPayload:
		return v.validateMedicalHistory(ctx, value, fields...)
	case *models.MedicalHistoryPayload:
		return v.validateMedicalHistory(ctx, *value, fields...)

	case models.FacilityPayload:
		return v.validateFacility(ctx, value, fields...)
	case *models.FacilityPayload:
		return v.validateFacility(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateBloodSugar(_ context.Context, p models.BloodSugarPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldPatientID, FieldReadingType, FieldReadingValue, FieldRecordedAt, FieldTimestamps}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldID:
			errs = append(errs, checkUUID(p.ID, ErrInvalidID))
		case FieldPatientID:
			errs = append(errs, checkUUID(p.PatientID, ErrInvalidPatientID))
		case FieldReadingType:
			if !slices.Contains(allowedReadingTypes, p.ReadingType) {
				errs = append(errs, ErrInvalidReadingType)
			}
		case FieldReadingValue:
			limit := float64(maxGlucoseValue)
			if p.ReadingType == models.ReadingHbA1c {
				limit = maxHbA1cValue
			}
			if p.ReadingValue <= 0 || p.ReadingValue > limit {
				errs = append(errs, fmt.Errorf("%w: %g", ErrInvalidReadingValue, p.ReadingValue))
			}
		case FieldRecordedAt:
			if p.RecordedAt.IsZero() {
				errs = append(errs, ErrMissingRecordedAt)
			}
		case FieldTimestamps:
			errs = append(errs, checkTimestamps(p.CreatedAt, p.UpdatedAt))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errors.Join(errs...)
}

func (v *RecordValidator) validateMedicalHistory(_ context.Context, p models.MedicalHistoryPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldPatientID, FieldAnswers, FieldTimestamps}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldID:
			errs = append(errs, checkUUID(p.ID, ErrInvalidID))
		case FieldPatientID:
			errs = append(errs, checkUUID(p.PatientID, ErrInvalidPatientID))
		case FieldAnswers:
			answers := map[string]models.Answer{
				"diagnosed_with_hypertension":      p.DiagnosedWithHypertension,
				"is_on_treatment_for_hypertension": p.IsOnTreatmentForHypertension,
				"prior_heart_attack":               p.HasHadHeartAttack,
				"prior_stroke":                     p.HasHadStroke,
				"chronic_kidney_disease":           p.HasHadKidneyDisease,
				"diabetes":                         p.HasDiabetes,
			}
			for _, name := range slices.Sorted(maps.Keys(answers)) {
				if !slices.Contains(allowedAnswers, answers[name]) {
					errs = append(errs, fmt.Errorf("%s: %w", name, ErrInvalidAnswer))
				}
			}
		case FieldTimestamps:
			errs = append(errs, checkTimestamps(p.CreatedAt, p.UpdatedAt))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errors.Join(errs...)
}

func (v *RecordValidator) validateFacility(_ context.Context, p models.FacilityPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldTimestamps}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldID:
			errs = append(errs, checkUUID(p.ID, ErrInvalidID))
		case FieldName:
			if strings.TrimSpace(p.Name) == "" {
				errs = append(errs, ErrEmptyName)
			}
		case FieldTimestamps:
			errs = append(errs, checkTimestamps(p.CreatedAt, p.UpdatedAt))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errors.Join(errs...)
}

func checkUUID(s string, sentinel error) error {
	if _, err := uuid.Parse(s); err != nil {
		return sentinel
	}
	return nil
}

func checkTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() || updatedAt.IsZero() {
		return ErrMissingTimestamps
	}
	if updatedAt.Before(createdAt) {
		return ErrUpdatedBeforeCreate
	}
	return nil
}

// Messages flattens a validation error into one message per failed check.
// It returns nil for a nil error.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range joined.Unwrap() {
		messages = append(messages, Messages(e)...)
	}
	return messages
}

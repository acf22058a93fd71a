// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID           = errors.New("id must be a UUID")
	ErrInvalidPatientID    = errors.New("patient_id must be a UUID")
	ErrInvalidReadingType  = errors.New("blood_sugar_type is not a known reading type")
	ErrInvalidReadingValue = errors.New("blood_sugar_value is out of range")
	ErrMissingRecordedAt   = errors.New("recorded_at is required")
	ErrMissingTimestamps   = errors.New("created_at and updated_at are required")
	ErrUpdatedBeforeCreate = errors.New("updated_at is before created_at")
	ErrInvalidAnswer       = errors.New("answer must be yes, no or unknown")
	ErrEmptyName           = errors.New("name is required")
)

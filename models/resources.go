// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Resource names of the synchronized entities. They appear in API paths,
// cursor slots and the entity column of the server store.
const (
	ResourceBloodSugars      = "blood_sugars"
	ResourceMedicalHistories = "medical_histories"
	ResourceFacilities       = "facilities"
)

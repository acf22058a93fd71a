// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the remote side of record synchronization for
// the agent.
//
// Each entity gets an [HTTPTransport] that satisfies
// [modelsync.Transport]: it translates local records into wire payloads,
// pushes them with POST /api/v1/{resource}/sync and pulls pages with
// GET /api/v1/{resource}/sync. All transports of one agent share a [Client]
// holding the base URL, timeout and session token.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrForbidden] for
// 403, [ErrUnauthorized] for 401).
package adapter

import (
	"github.com/MKhiriev/go-record-sync/internal/modelsync"
	"github.com/MKhiriev/go-record-sync/models"
)

// Compile-time checks that the entity transports satisfy the sync contract.
var (
	_ modelsync.Transport[models.BloodSugarMeasurement] = (*HTTPTransport[models.BloodSugarMeasurement, models.BloodSugarPayload])(nil)
	_ modelsync.Transport[models.MedicalHistory]        = (*HTTPTransport[models.MedicalHistory, models.MedicalHistoryPayload])(nil)
	_ modelsync.Transport[models.Facility]              = (*HTTPTransport[models.Facility, models.FacilityPayload])(nil)
)

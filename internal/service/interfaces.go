// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-record-sync/models"
)

// RecordService is the server side of the push/pull protocol. Payloads stay
// opaque JSON outside of validation.
type RecordService interface {
	// Push validates records of resource and stores the valid ones. Records
	// failing validation are returned, one entry per rejected id; they are
	// not stored.
	Push(ctx context.Context, resource string, records []json.RawMessage) ([]models.ValidationError, error)

	// Pull returns up to limit records of resource changed after the
	// position encoded in processToken. An empty token starts from the
	// beginning.
	Pull(ctx context.Context, resource string, processToken string, limit int) (models.PullResponse[json.RawMessage], error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

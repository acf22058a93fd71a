// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-record-sync/internal/service"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrUnknownResource:     http.StatusNotFound,
	service.ErrInvalidLimit:        http.StatusBadRequest,
	service.ErrInvalidProcessToken: http.StatusBadRequest,
	service.ErrNoRecordsProvided:   http.StatusBadRequest,
	service.ErrRecordWithoutID:     http.StatusBadRequest,
	utils.ErrInvalidJSONBody:       http.StatusBadRequest,
	ErrInvalidLimitParam:           http.StatusBadRequest,

	store.ErrTemporary: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	// a transient failure also wraps the failed SQL step, and wins over it
	if errors.Is(err, store.ErrTemporary) {
		return http.StatusServiceUnavailable
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError replies with the status mapped from err. Server-side failures
// are reported by status text only.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}

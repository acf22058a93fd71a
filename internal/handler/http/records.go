// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/models"
)

// defaultPullLimit is the page size of a pull request without a limit.
const defaultPullLimit = 500

func (h *Handler) pushRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	resource := chi.URLParam(r, resourceParam)

	var request models.PushRequest[json.RawMessage]
	if err := utils.ReadJSON(r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.pushRecords").Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	rejected, err := h.services.RecordService.Push(r.Context(), resource, request.Records)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pushRecords").Str("resource", resource).Msg("error pushing records")
		writeError(w, err)
		return
	}

	subject, _ := utils.GetUserIDFromContext(r.Context())
	log.Info().
		Str("func", "*Handler.pushRecords").
		Str("resource", resource).
		Str("subject", subject).
		Int("records", len(request.Records)).
		Int("rejected", len(rejected)).
		Msg("records pushed")

	if rejected == nil {
		rejected = []models.ValidationError{}
	}
	utils.WriteJSON(w, models.PushResponse{Errors: rejected}, http.StatusOK)
}

func (h *Handler) pullRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	resource := chi.URLParam(r, resourceParam)
	query := r.URL.Query()

	limit := defaultPullLimit
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			err = fmt.Errorf("%w: %q", ErrInvalidLimitParam, raw)
			log.Err(err).Str("func", "*Handler.pullRecords").Send()
			writeError(w, err)
			return
		}
		limit = parsed
	}

	page, err := h.services.RecordService.Pull(r.Context(), resource, query.Get("process_token"), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pullRecords").Str("resource", resource).Msg("error pulling records")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/models"
)

// approvalRequired lists the resources carrying patient data. Sessions
// without the sync_approved claim may only exchange reference data.
var approvalRequired = map[string]bool{
	models.ResourceBloodSugars:      true,
	models.ResourceMedicalHistories: true,
}

// auth verifies the bearer token of the request and stores its claims in the
// request context. Requests without a valid, unexpired token are rejected
// with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokens.TokenSignKey, h.tokens.TokenIssuer)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				log.Err(err).Msg("token expired")
				http.Error(w, "token is expired", http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := utils.WithSession(r.Context(), token.SyncClaims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSyncApproval answers 403 Forbidden when the session is not approved
// for sync and the requested resource carries patient data.
func requireSyncApproval(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !approvalRequired[chi.URLParam(r, resourceParam)] {
			next.ServeHTTP(w, r)
			return
		}

		claims, ok := utils.GetSessionFromContext(r.Context())
		if !ok || !claims.SyncApproved {
			logger.FromRequest(r).Warn().
				Str("func", "requireSyncApproval").
				Str("subject", claims.Subject).
				Msg("session is not approved for sync")
			http.Error(w, ErrSessionNotApproved.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// resourceParam is the URL parameter naming the synchronized entity.
const resourceParam = "resource"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/v1/{"+resourceParam+"}", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(requireSyncApproval)

		r.Post("/sync", h.pushRecords)
		r.Get("/sync", h.pullRecords)
	})

	return router
}

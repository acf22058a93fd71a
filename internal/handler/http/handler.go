// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/service"
	"github.com/MKhiriev/go-record-sync/internal/utils"
)

type Handler struct {
	services *service.Services
	tokens   config.ServerApp
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler returns the REST handler. Bearer tokens are verified with the
// sign key and issuer of cfg.
func NewHandler(services *service.Services, cfg config.ServerApp, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		tokens:   cfg,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/internal/validators"
)

// Services groups the reference server's services.
type Services struct {
	RecordService  RecordService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		RecordService:  NewRecordService(storages.SyncRecords, validators.NewRecordValidator(), logger),
		AppInfoService: appInfo,
	}, nil
}

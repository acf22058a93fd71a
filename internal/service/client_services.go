// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-record-sync/internal/adapter"
	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/modelsync"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/models"
)

// ClientServices groups the agent's services.
type ClientServices struct {
	Session     SessionGate
	SyncService SyncService

	// Entities lists the entity syncs in registration order.
	Entities []modelsync.ModelSync
}

// NewClientServices binds every synchronized entity to its repository,
// cursor slot and transport, and builds the orchestrator over them.
//
// Patient data (blood sugars, medical histories) is synced frequently and
// only for approved sessions; facilities are reference data synced daily
// for any session.
func NewClientServices(storages *store.ClientStorages, client *adapter.Client, cfg config.ClientSync, log *logger.Logger) (*ClientServices, error) {
	frequent := modelsync.Config{
		BatchSize:               orDefaultBatchSize(cfg.FrequentBatchSize),
		Cadence:                 modelsync.CadenceFrequent,
		RequiresApprovedSession: true,
	}
	daily := modelsync.Config{
		BatchSize: orDefaultBatchSize(cfg.DailyBatchSize),
		Cadence:   modelsync.CadenceDaily,
	}

	bloodSugars, err := modelsync.NewEntitySync[models.BloodSugarMeasurement](adapter.ResourceBloodSugars, frequent,
		storages.BloodSugars, storages.Cursors.CursorStore(adapter.ResourceBloodSugars),
		adapter.NewBloodSugarTransport(client), log)
	if err != nil {
		return nil, fmt.Errorf("error creating blood sugar sync: %w", err)
	}

	histories, err := modelsync.NewEntitySync[models.MedicalHistory](adapter.ResourceMedicalHistories, frequent,
		storages.MedicalHistories, storages.Cursors.CursorStore(adapter.ResourceMedicalHistories),
		adapter.NewMedicalHistoryTransport(client), log)
	if err != nil {
		return nil, fmt.Errorf("error creating medical history sync: %w", err)
	}

	facilities, err := modelsync.NewEntitySync[models.Facility](adapter.ResourceFacilities, daily,
		storages.Facilities, storages.Cursors.CursorStore(adapter.ResourceFacilities),
		adapter.NewFacilityTransport(client), log)
	if err != nil {
		return nil, fmt.Errorf("error creating facility sync: %w", err)
	}

	entities := []modelsync.ModelSync{bloodSugars, histories, facilities}
	session := NewTokenSession(client, log)

	syncService, err := NewSyncService(session, log, entities...)
	if err != nil {
		return nil, fmt.Errorf("error creating sync service: %w", err)
	}

	return &ClientServices{
		Session:     session,
		SyncService: syncService,
		Entities:    entities,
	}, nil
}

func orDefaultBatchSize(n int) int {
	if n <= 0 {
		return modelsync.DefaultBatchSize
	}
	return n
}

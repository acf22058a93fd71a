// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AccessToken:   "session-token",
			TokenSignKey:  "sign",
			TokenIssuer:   "record-sync",
			TokenDuration: time.Hour,
			TokenSubject:  "user-1",
		},
		Storage: Storage{DB: DB{DSN: "records.db"}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Adapter: Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
		Workers: Workers{FrequentInterval: time.Minute, DailyInterval: time.Hour},
		Sync:    Sync{FrequentBatchSize: 10, DailyBatchSize: 20},
		Log:     Log{File: "agent.log"},
	}
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := validStructuredConfig()
	cfg.Storage.CursorFile = "cursors.json"

	client := NewClientConfig(cfg)

	assert.Equal(t, "session-token", client.App.AccessToken)
	assert.Equal(t, "http://localhost:8080", client.Adapter.HTTPAddress)
	assert.Equal(t, "records.db", client.Storage.DB.DSN)
	assert.Equal(t, "cursors.json", client.Storage.CursorFile)
	assert.Equal(t, time.Minute, client.Workers.FrequentInterval)
	assert.Equal(t, 20, client.Sync.DailyBatchSize)
	assert.Equal(t, "agent.log", client.LogFile)
	assert.NoError(t, client.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{"empty dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"empty server url", func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *StructuredConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"zero interval", func(c *StructuredConfig) { c.Workers.DailyInterval = 0 }, ErrInvalidWorkerConfigs},
		{"zero batch", func(c *StructuredConfig) { c.Sync.FrequentBatchSize = 0 }, ErrInvalidSyncConfigs},
		{"batch above server page", func(c *StructuredConfig) { c.Sync.DailyBatchSize = MaxBatchSize + 1 }, ErrInvalidSyncConfigs},
		{"unknown operation", func(c *StructuredConfig) { c.Run = Run{Entity: "facilities", Operation: "merge"} }, ErrInvalidRunConfigs},
		{"operation without entity", func(c *StructuredConfig) { c.Run = Run{Operation: "pull"} }, ErrInvalidRunConfigs},
		{"no access token", func(c *StructuredConfig) { c.App.AccessToken = "" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, NewClientConfig(cfg).validate(), tt.wantErr)
		})
	}
}

func TestClientRun(t *testing.T) {
	tests := []struct {
		name    string
		run     Run
		oneShot bool
	}{
		{name: "cadence loop", run: Run{}, oneShot: false},
		{name: "once", run: Run{Once: true}, oneShot: true},
		{name: "entity implies one shot", run: Run{Entity: "facilities"}, oneShot: true},
		{name: "entity with operation", run: Run{Entity: "blood_sugars", Operation: RunOperationPull}, oneShot: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			cfg.Run = tt.run

			client := NewClientConfig(cfg)
			assert.NoError(t, client.validate())
			assert.Equal(t, tt.oneShot, client.Run.OneShot())
			assert.Equal(t, tt.run.Entity, client.Run.Entity)
			assert.Equal(t, tt.run.Operation, client.Run.Operation)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"empty dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"empty address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"no sign key", func(c *StructuredConfig) { c.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"no issuer", func(c *StructuredConfig) { c.App.TokenIssuer = "" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)

			err := NewServerConfig(cfg).validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenConfig_Validate(t *testing.T) {
	valid := TokenConfig{SignKey: "k", Issuer: "i", Duration: time.Hour, Subject: "s"}
	assert.NoError(t, valid.validate())

	noSubject := valid
	noSubject.Subject = ""
	assert.ErrorIs(t, noSubject.validate(), ErrInvalidAppConfigs)

	noDuration := valid
	noDuration.Duration = 0
	assert.ErrorIs(t, noDuration.validate(), ErrInvalidAppConfigs)
}

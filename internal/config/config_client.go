// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the agent's session settings.
type ClientApp struct {
	// AccessToken is presented as a bearer token on every remote call.
	AccessToken string
	// Version is reported in the agent's build banner.
	Version string
}

// ClientAdapter holds network settings used by the agent transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the agent.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups agent storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// CursorFile switches pull cursors to a JSON file when non-empty.
	CursorFile string
}

// ClientWorkers contains the interval of each cadence tier.
type ClientWorkers struct {
	FrequentInterval time.Duration
	DailyInterval    time.Duration
}

// ClientSync contains the pull page size of each cadence tier.
type ClientSync struct {
	FrequentBatchSize int
	DailyBatchSize    int
}

// One-shot operations accepted by [ClientRun.Operation].
const (
	RunOperationSync = "sync"
	RunOperationPush = "push"
	RunOperationPull = "pull"
)

// ClientRun selects a one-shot invocation of the agent.
type ClientRun struct {
	Once      bool
	Entity    string
	Operation string
}

// OneShot reports whether the agent should run once and exit instead of
// starting the cadence workers.
func (r ClientRun) OneShot() bool {
	return r.Once || r.Entity != ""
}

// ClientConfig is the top-level agent configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains session settings.
	App ClientApp
	// Adapter contains the remote service address and timeout.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
	// Workers contains cadence schedules.
	Workers ClientWorkers
	// Sync contains pull page sizes.
	Sync ClientSync
	// LogFile is the rotated log path; empty means stdout.
	LogFile string
	// Run selects a one-shot invocation.
	Run ClientRun
}

// GetClientConfig builds and validates the agent config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the agent runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			AccessToken: cfg.App.AccessToken,
			Version:     cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			CursorFile: cfg.Storage.CursorFile,
		},
		Workers: ClientWorkers{
			FrequentInterval: cfg.Workers.FrequentInterval,
			DailyInterval:    cfg.Workers.DailyInterval,
		},
		Sync: ClientSync{
			FrequentBatchSize: cfg.Sync.FrequentBatchSize,
			DailyBatchSize:    cfg.Sync.DailyBatchSize,
		},
		LogFile: cfg.Log.File,
		Run: ClientRun{
			Once:      cfg.Run.Once,
			Entity:    cfg.Run.Entity,
			Operation: cfg.Run.Operation,
		},
	}
}

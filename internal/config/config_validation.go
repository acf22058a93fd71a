// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the invariants shared by every binary. Values that only
// matter to one binary are checked by its own view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.FrequentBatchSize < 0 || cfg.Sync.DailyBatchSize < 0 {
		return fmt.Errorf("%w: negative batch size", ErrInvalidSyncConfigs)
	}

	if cfg.Sync.FrequentBatchSize > MaxBatchSize || cfg.Sync.DailyBatchSize > MaxBatchSize {
		return fmt.Errorf("%w: batch size above %d", ErrInvalidSyncConfigs, MaxBatchSize)
	}

	if cfg.Workers.FrequentInterval < 0 || cfg.Workers.DailyInterval < 0 {
		return fmt.Errorf("%w: negative interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.FrequentInterval <= 0 || cfg.Workers.DailyInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Sync.FrequentBatchSize <= 0 || cfg.Sync.DailyBatchSize <= 0 ||
		cfg.Sync.FrequentBatchSize > MaxBatchSize || cfg.Sync.DailyBatchSize > MaxBatchSize {
		return ErrInvalidSyncConfigs
	}

	if cfg.App.AccessToken == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.Run.Operation {
	case "", RunOperationSync, RunOperationPush, RunOperationPull:
	default:
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidRunConfigs, cfg.Run.Operation)
	}
	if cfg.Run.Operation != "" && cfg.Run.Entity == "" {
		return fmt.Errorf("%w: operation %q needs an entity", ErrInvalidRunConfigs, cfg.Run.Operation)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *TokenConfig) validate() error {
	if cfg.SignKey == "" || cfg.Issuer == "" || cfg.Subject == "" || cfg.Duration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

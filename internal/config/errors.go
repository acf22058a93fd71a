// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid agent adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing access token or sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidSyncConfigs indicates a non-positive pull batch size.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidRunConfigs indicates an unknown one-shot operation or an
	// operation without an entity.
	ErrInvalidRunConfigs = errors.New("invalid run configuration")
	// ErrInvalidServerConfigs indicates invalid server listen settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

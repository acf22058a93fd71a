// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync agent, the reference server and the token generator. It is populated
// by merging command-line flags, environment variables, an optional JSON file
// and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session and token settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the relational database and the
	// optional file-backed cursor store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeout of the reference server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote service address used by the sync agent.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the schedule of the cadence tiers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds the pull batch sizes of the cadence tiers.
	Sync Sync `envPrefix:"SYNC_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// Run selects a one-shot agent invocation instead of the cadence loop.
	Run Run `envPrefix:"RUN_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the session
// token lifecycle.
type App struct {
	// AccessToken is the session token the agent presents to the server.
	// Its sync_approved claim gates entities that carry patient data.
	// Env: APP_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TokenSubject is the "sub" claim of tokens issued by the token generator.
	// Env: APP_TOKEN_SUBJECT
	TokenSubject string `env:"TOKEN_SUBJECT"`

	// TokenSyncApproved is the sync_approved claim of issued tokens.
	// Env: APP_TOKEN_SYNC_APPROVED
	TokenSyncApproved bool `env:"TOKEN_SYNC_APPROVED"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// CursorFile is the path of the JSON file holding pull cursors.
	// When empty, cursors are kept in the database.
	// Env: STORAGE_CURSOR_FILE
	CursorFile string `env:"CURSOR_FILE"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string: a file path for the agent's SQLite
	// database, a postgres:// URI for the server.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the server listens on ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the outbound connection to the remote service.
type Adapter struct {
	// HTTPAddress is the base URL of the remote service
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single push or pull call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the ticker interval of every cadence tier.
type Workers struct {
	// FrequentInterval is how often frequent entities are synced.
	// Env: WORKERS_FREQUENT_INTERVAL
	FrequentInterval time.Duration `env:"FREQUENT_INTERVAL"`

	// DailyInterval is how often daily entities are synced.
	// Env: WORKERS_DAILY_INTERVAL
	DailyInterval time.Duration `env:"DAILY_INTERVAL"`
}

// MaxBatchSize is the largest pull page the server hands out. A larger
// batch size would make every page look short, so pulls would stop after
// the first page.
const MaxBatchSize = 1000

// Sync holds the pull page size of every cadence tier.
type Sync struct {
	// FrequentBatchSize is the page size of frequent entities.
	// Env: SYNC_FREQUENT_BATCH_SIZE
	FrequentBatchSize int `env:"FREQUENT_BATCH_SIZE"`

	// DailyBatchSize is the page size of daily entities.
	// Env: SYNC_DAILY_BATCH_SIZE
	DailyBatchSize int `env:"DAILY_BATCH_SIZE"`
}

// Log holds log output settings.
type Log struct {
	// File is the path of the rotated log file. Empty means stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Run selects what a one-shot agent invocation does.
type Run struct {
	// Once runs one sync of every entity and exits.
	// Env: RUN_ONCE
	Once bool `env:"ONCE"`

	// Entity limits a one-shot run to one entity. Setting it implies a
	// one-shot run.
	// Env: RUN_ENTITY
	Entity string `env:"ENTITY"`

	// Operation is "sync", "push" or "pull" and needs Entity. Empty means sync.
	// Env: RUN_OPERATION
	Operation string `env:"OPERATION"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(os.Args[1:]).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

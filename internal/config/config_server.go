// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds token verification settings of the reference server.
type ServerApp struct {
	TokenSignKey string
	TokenIssuer  string
	Version      string
}

// ServerStorage groups the server's storage settings.
type ServerStorage struct {
	DB DB
}

// ServerConfig is the reference server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  Server
	Storage ServerStorage
	LogFile string
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the fields relevant to the server runtime.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
			Version:      cfg.App.Version,
		},
		Server:  cfg.Server,
		Storage: ServerStorage{DB: cfg.Storage.DB},
		LogFile: cfg.Log.File,
	}

	return serverCfg
}

// TokenConfig holds what is needed to issue session tokens.
type TokenConfig struct {
	SignKey      string
	Issuer       string
	Duration     time.Duration
	Subject      string
	SyncApproved bool
}

// GetTokenConfig builds and validates the token generator config view.
func GetTokenConfig() (*TokenConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	tokenCfg := &TokenConfig{
		SignKey:  cfg.App.TokenSignKey,
		Issuer:   cfg.App.TokenIssuer,
		Duration: cfg.App.TokenDuration,

		Subject:      cfg.App.TokenSubject,
		SyncApproved: cfg.App.TokenSyncApproved,
	}
	return tokenCfg, tokenCfg.validate()
}

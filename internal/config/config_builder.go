// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Built-in defaults applied when no source sets a value.
const (
	defaultBatchSize        = 500
	defaultFrequentInterval = 5 * time.Minute
	defaultDailyInterval    = 24 * time.Hour
	defaultRequestTimeout   = 30 * time.Second
	defaultTokenDuration    = 24 * time.Hour
	defaultServerAddress    = "localhost:8080"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs. A field set by an earlier source is
// never overwritten by a later one.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			TokenDuration: defaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			FrequentInterval: defaultFrequentInterval,
			DailyInterval:    defaultDailyInterval,
		},
		Sync: Sync{
			FrequentBatchSize: defaultBatchSize,
			DailyBatchSize:    defaultBatchSize,
		},
	})
	return b
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-record-sync/internal/config"
)

// Client defines the lifecycle of a runnable agent.
type Client interface {
	// Run starts the agent and blocks until ctx is done.
	Run(ctx context.Context) error

	// RunOnce performs a single sync selected by run and returns.
	RunOnce(ctx context.Context, run config.ClientRun) error
}

var _ Client = (*App)(nil)

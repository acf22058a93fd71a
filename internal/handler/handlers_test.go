// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	// the handler only keeps the services pointer, so nil is fine here
	h, err := NewHandlers(nil, &config.ServerConfig{Server: config.Server{HTTPAddress: ":8080"}}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)

	h, err = NewHandlers(nil, &config.ServerConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func issue(t *testing.T, approved bool, ttl time.Duration) staticToken {
	t.Helper()
	token, err := utils.GenerateJWTToken("record-sync", "user-1", approved, ttl, "sign-key")
	require.NoError(t, err)
	return staticToken(token.SignedString)
}

func TestTokenSession_HasApprovedSession(t *testing.T) {
	tests := []struct {
		name  string
		token staticToken
		want  bool
	}{
		{name: "approved and valid", token: issue(t, true, time.Hour), want: true},
		{name: "not approved", token: issue(t, false, time.Hour), want: false},
		{name: "expired", token: issue(t, true, -time.Minute), want: false},
		{name: "no token", token: "", want: false},
		{name: "garbage", token: "not-a-jwt", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewTokenSession(tt.token, logger.Nop())
			assert.Equal(t, tt.want, gate.HasApprovedSession(context.Background()))
		})
	}
}

func TestTokenSession_ExpiresWithClock(t *testing.T) {
	gate := NewTokenSession(issue(t, true, time.Hour), logger.Nop()).(*tokenSession)
	assert.True(t, gate.HasApprovedSession(context.Background()))

	gate.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	assert.False(t, gate.HasApprovedSession(context.Background()))
}

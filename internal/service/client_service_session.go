// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/utils"
)

// tokenSession is the [SessionGate] backed by the agent's session token.
// The token is issued by the server, so the agent only reads its claims and
// leaves signature checks to the server.
type tokenSession struct {
	tokens TokenSource
	now    func() time.Time
	logger *logger.Logger
}

// NewTokenSession returns a gate that approves sessions whose token carries
// sync_approved and has not expired.
func NewTokenSession(tokens TokenSource, log *logger.Logger) SessionGate {
	return &tokenSession{
		tokens: tokens,
		now:    time.Now,
		logger: log,
	}
}

func (s *tokenSession) HasApprovedSession(ctx context.Context) bool {
	raw := s.tokens.Token()
	if raw == "" {
		return false
	}

	token, err := utils.ParseUnverifiedJWT(raw)
	if err != nil {
		s.logger.Err(err).Str("func", "tokenSession.HasApprovedSession").Msg("session token cannot be parsed")
		return false
	}

	if token.Expired(s.now()) {
		s.logger.Warn().Str("func", "tokenSession.HasApprovedSession").Msg("session token is expired")
		return false
	}

	return token.SyncApproved
}

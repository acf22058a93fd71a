// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SyncClaims is the claim set carried by a session token.
//
// Besides the registered claims it holds SyncApproved, which is set once the
// user has been approved for syncing by an administrator. Entities that carry
// patient data are only exchanged for approved sessions.
type SyncClaims struct {
	jwt.RegisteredClaims

	// SyncApproved reports whether the session owner may exchange patient data.
	SyncApproved bool `json:"sync_approved"`
}

// Token wraps a JWT session token with convenience accessors.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [SyncClaims] for claim access (subject, expiry, sync approval).
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	SyncClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// UserID returns the owner identifier stored in the "sub" claim.
func (t *Token) UserID() (string, error) {
	if t.Subject == "" {
		return "", errors.New("empty subject in token")
	}
	return t.Subject, nil
}

// Expired reports whether the token has an expiry claim that lies before now.
// A token without expiry never expires.
func (t *Token) Expired(now time.Time) bool {
	if t.ExpiresAt == nil {
		return false
	}
	return !now.Before(t.ExpiresAt.Time)
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-record-sync/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the authentication middleware stores
// the verified [models.SyncClaims] of the caller.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying the caller's claims.
func WithSession(ctx context.Context, claims models.SyncClaims) context.Context {
	return context.WithValue(ctx, SessionCtxKey, claims)
}

// GetSessionFromContext retrieves the caller's claims from ctx.
// ok is false when no session was stored.
func GetSessionFromContext(ctx context.Context) (models.SyncClaims, bool) {
	claims, ok := ctx.Value(SessionCtxKey).(models.SyncClaims)
	return claims, ok
}

// GetUserIDFromContext retrieves the caller's user identifier (the token
// subject) from ctx.
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	claims, ok := GetSessionFromContext(ctx)
	if !ok || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrSessionNotApproved is returned when a session without the
	// sync_approved claim asks for patient data.
	ErrSessionNotApproved = errors.New("session is not approved for sync")

	// ErrInvalidLimitParam is returned when the limit query parameter is not
	// an integer.
	ErrInvalidLimitParam = errors.New("limit must be an integer")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from the HTTP status of a remote response. Every one of them
// is a transport failure as far as the sync coordinator is concerned.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("session is not approved for sync")
	ErrNotFound     = errors.New("resource not found")
	ErrServer       = errors.New("remote server error")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks pushed record payloads before the server
// accepts them.
//
// A failed validation is not an API error: every failure becomes a
// human-readable message of a per-record ValidationError returned to the
// pushing agent, which then marks that record INVALID.
package validators

import "context"

// Validator validates an arbitrary value and optionally restricts the checks
// to the named fields. All failing checks are reported together.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package modelsync

import "fmt"

// Cadence is the scheduling tier of an entity. It is consumed by the
// scheduler only; the coordinator never looks at it.
type Cadence string

const (
	// CadenceFrequent entities change often and are synced every few minutes.
	CadenceFrequent Cadence = "frequent"

	// CadenceDaily entities are mostly reference data synced once a day.
	CadenceDaily Cadence = "daily"
)

// DefaultBatchSize is the pull page size used when none is configured.
const DefaultBatchSize = 500

// Config is the immutable per-entity sync configuration.
type Config struct {
	// BatchSize is the number of records per pull page.
	BatchSize int

	// Cadence is the scheduling tier of the entity.
	Cadence Cadence

	// RequiresApprovedSession gates the entity behind an approved session.
	RequiresApprovedSession bool
}

// Validate reports whether the configuration can be used by a coordinator.
func (c Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBatchSize, c.BatchSize)
	}

	switch c.Cadence {
	case CadenceFrequent, CadenceDaily:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCadence, c.Cadence)
	}
}

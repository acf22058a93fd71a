// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package modelsync

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/models"
)

// Coordinator runs the push and pull algorithms for records of type T.
// It keeps no state between calls: everything it touches is passed in.
type Coordinator[T Record] struct {
	logger *logger.Logger
}

// NewCoordinator creates a Coordinator that logs through log.
// A nil log disables logging.
func NewCoordinator[T Record](log *logger.Logger) *Coordinator[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Coordinator[T]{logger: log}
}

// Push uploads every PENDING record of repo through push and reconciles the
// outcome.
//
// When nothing is pending no remote call is made. Otherwise push is called
// exactly once with the whole pending set. Records named by a validation error
// become INVALID, the others become DONE, and both changes are written with
// a single SetStatus call. A failed remote call or a protocol violation leaves
// every status untouched.
func (c *Coordinator[T]) Push(ctx context.Context, repo SynchronizableRepository[T], push PushFunc[T]) error {
	pending, err := repo.RecordsWithStatus(ctx, models.SyncStatusPending)
	if err != nil {
		c.logger.Err(err).Str("func", "Coordinator.Push").Msg("error reading pending records")
		return fmt.Errorf("error reading pending records: %w", err)
	}
	if len(pending) == 0 {
		c.logger.Debug().Msg("nothing to push")
		return nil
	}

	c.logger.Debug().Int("pending", len(pending)).Msg("pushing pending records")

	validationErrors, err := push(ctx, pending)
	if err != nil {
		c.logger.Err(err).Str("func", "Coordinator.Push").Int("pending", len(pending)).Msg("push call failed")
		return fmt.Errorf("%w: push: %w", ErrTransport, err)
	}

	changes, err := partitionPushed(pending, validationErrors)
	if err != nil {
		c.logger.Err(err).Str("func", "Coordinator.Push").Msg("push response breaks the protocol")
		return err
	}

	for _, ve := range validationErrors {
		c.logger.Warn().Str("record_id", ve.ID).Strs("messages", ve.Messages).Msg("record rejected by server")
	}

	if err = repo.SetStatus(ctx, changes...); err != nil {
		c.logger.Err(err).Str("func", "Coordinator.Push").Msg("error saving push outcome")
		return fmt.Errorf("error saving push outcome: %w", err)
	}

	c.logger.Info().
		Int("pushed", len(pending)).
		Int("rejected", len(validationErrors)).
		Msg("push completed")

	return nil
}

// partitionPushed splits the pushed records into the DONE and INVALID status
// changes. Both lists keep the order of pending; empty changes are omitted.
func partitionPushed[T Record](pending []T, validationErrors []models.ValidationError) ([]models.StatusChange, error) {
	batch := make(map[string]struct{}, len(pending))
	for _, r := range pending {
		batch[r.RecordID()] = struct{}{}
	}

	rejected := make(map[string]struct{}, len(validationErrors))
	for _, ve := range validationErrors {
		if _, ok := batch[ve.ID]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRecord, ve.ID)
		}
		if _, ok := rejected[ve.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateValidationError, ve.ID)
		}
		if len(ve.Messages) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyValidationMessages, ve.ID)
		}
		rejected[ve.ID] = struct{}{}
	}

	done := make([]string, 0, len(pending)-len(rejected))
	invalid := make([]string, 0, len(rejected))
	for _, r := range pending {
		if _, ok := rejected[r.RecordID()]; ok {
			invalid = append(invalid, r.RecordID())
			continue
		}
		done = append(done, r.RecordID())
	}

	changes := make([]models.StatusChange, 0, 2)
	if len(done) > 0 {
		changes = append(changes, models.StatusChange{IDs: done, Status: models.SyncStatusDone})
	}
	if len(invalid) > 0 {
		changes = append(changes, models.StatusChange{IDs: invalid, Status: models.SyncStatusInvalid})
	}
	return changes, nil
}

// Pull downloads remote changes into repo page by page.
//
// Each iteration reads the cursor, fetches one page, upserts its records and
// only then advances the cursor. The loop continues while a page is full and
// not marked final. Any failure stops the loop; the cursor persisted by the
// last complete page is kept, so the next call resumes from there.
func (c *Coordinator[T]) Pull(ctx context.Context, repo SynchronizableRepository[T], cursors CursorStore, batchSize int, pull PullFunc[T]) error {
	if batchSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}

	var pages, records int
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		stored, found, err := cursors.Get(ctx)
		if err != nil {
			c.logger.Err(err).Str("func", "Coordinator.Pull").Msg("error reading pull cursor")
			return fmt.Errorf("error reading pull cursor: %w", err)
		}
		var cursor *string
		if found {
			cursor = &stored
		}

		page, err := pull(ctx, batchSize, cursor)
		if err != nil {
			c.logger.Err(err).Str("func", "Coordinator.Pull").Int("page", pages+1).Msg("pull call failed")
			return fmt.Errorf("%w: pull: %w", ErrTransport, err)
		}

		if err = checkPage(page, batchSize, cursor); err != nil {
			c.logger.Err(err).Str("func", "Coordinator.Pull").Int("page", pages+1).Msg("pull response breaks the protocol")
			return err
		}

		if len(page.Records) > 0 {
			if err = repo.Upsert(ctx, page.Records); err != nil {
				c.logger.Err(err).Str("func", "Coordinator.Pull").Msg("error storing pulled records")
				return fmt.Errorf("error storing pulled records: %w", err)
			}
		}

		// an empty cursor on a terminal page keeps the previous position
		if page.NextCursor != "" && (cursor == nil || *cursor != page.NextCursor) {
			if err = cursors.Set(ctx, page.NextCursor); err != nil {
				c.logger.Err(err).Str("func", "Coordinator.Pull").Msg("error advancing pull cursor")
				return fmt.Errorf("error advancing pull cursor: %w", err)
			}
		}

		pages++
		records += len(page.Records)

		if page.Final || len(page.Records) < batchSize {
			break
		}
	}

	c.logger.Info().Int("pages", pages).Int("records", records).Msg("pull completed")
	return nil
}

// checkPage rejects pages that cannot be applied without risking an endless
// loop or records the repository cannot key.
func checkPage[T Record](page PullPage[T], batchSize int, cursor *string) error {
	if len(page.Records) > batchSize {
		return fmt.Errorf("%w: %d records for batch size %d", ErrMalformedPage, len(page.Records), batchSize)
	}

	for i, r := range page.Records {
		if r.RecordID() == "" {
			return fmt.Errorf("%w: record %d has no id", ErrMalformedPage, i)
		}
	}

	if len(page.Records) == batchSize && !page.Final {
		if page.NextCursor == "" {
			return fmt.Errorf("%w: full page without next cursor", ErrMalformedPage)
		}
		if cursor != nil && *cursor == page.NextCursor {
			return fmt.Errorf("%w: full page did not advance the cursor", ErrMalformedPage)
		}
	}

	return nil
}

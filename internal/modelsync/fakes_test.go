// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package modelsync

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/MKhiriev/go-record-sync/models"
)

// testRecord is a minimal synced record used across the package tests.
type testRecord struct {
	ID     string
	Value  string
	Status models.SyncStatus
}

func (r testRecord) RecordID() string { return r.ID }

// memRepository is an in-memory SynchronizableRepository that records how
// it was called.
type memRepository struct {
	mu      sync.Mutex
	records map[string]testRecord

	setStatusCalls [][]models.StatusChange
	upsertCalls    int

	readErr   error
	setErr    error
	upsertErr error
}

func newMemRepository(records ...testRecord) *memRepository {
	r := &memRepository{records: make(map[string]testRecord)}
	for _, rec := range records {
		r.records[rec.ID] = rec
	}
	return r
}

func (r *memRepository) RecordsWithStatus(_ context.Context, status models.SyncStatus) ([]testRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.readErr != nil {
		return nil, r.readErr
	}

	var out []testRecord
	for _, rec := range r.records {
		if rec.Status == status {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepository) SetStatus(_ context.Context, changes ...models.StatusChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.setStatusCalls = append(r.setStatusCalls, changes)
	if r.setErr != nil {
		return r.setErr
	}

	for _, ch := range changes {
		for _, id := range ch.IDs {
			rec, ok := r.records[id]
			if !ok {
				return errors.New("unknown id " + id)
			}
			rec.Status = ch.Status
			r.records[id] = rec
		}
	}
	return nil
}

func (r *memRepository) Upsert(_ context.Context, records []testRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.upsertCalls++
	if r.upsertErr != nil {
		return r.upsertErr
	}

	for _, rec := range records {
		rec.Status = models.SyncStatusDone
		r.records[rec.ID] = rec
	}
	return nil
}

func (r *memRepository) status(id string) models.SyncStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[id].Status
}

func (r *memRepository) snapshot() map[string]testRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]testRecord, len(r.records))
	for k, v := range r.records {
		out[k] = v
	}
	return out
}

// memCursorStore is an in-memory CursorStore.
type memCursorStore struct {
	mu     sync.Mutex
	cursor string
	found  bool
	sets   []string

	getErr error
	setErr error
}

func (c *memCursorStore) Get(context.Context) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.getErr != nil {
		return "", false, c.getErr
	}
	return c.cursor, c.found, nil
}

func (c *memCursorStore) Set(_ context.Context, cursor string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.setErr != nil {
		return c.setErr
	}
	c.cursor = cursor
	c.found = true
	c.sets = append(c.sets, cursor)
	return nil
}

// funcTransport adapts plain functions to the Transport interface.
type funcTransport struct {
	push PushFunc[testRecord]
	pull PullFunc[testRecord]
}

func (t funcTransport) Push(ctx context.Context, records []testRecord) ([]models.ValidationError, error) {
	return t.push(ctx, records)
}

func (t funcTransport) Pull(ctx context.Context, batchSize int, cursor *string) (PullPage[testRecord], error) {
	return t.pull(ctx, batchSize, cursor)
}

// scriptedPull replays pages in order and records the cursors it was called with.
type scriptedPull struct {
	mu      sync.Mutex
	pages   []PullPage[testRecord]
	errs    map[int]error
	cursors []*string
}

func (s *scriptedPull) fn(_ context.Context, _ int, cursor *string) (PullPage[testRecord], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	call := len(s.cursors)
	if cursor != nil {
		c := *cursor
		cursor = &c
	}
	s.cursors = append(s.cursors, cursor)

	if err, ok := s.errs[call]; ok {
		return PullPage[testRecord]{}, err
	}
	if call >= len(s.pages) {
		return PullPage[testRecord]{}, nil
	}
	return s.pages[call], nil
}

func (s *scriptedPull) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cursors)
}

func page(cursor string, ids ...string) PullPage[testRecord] {
	p := PullPage[testRecord]{NextCursor: cursor}
	for _, id := range ids {
		p.Records = append(p.Records, testRecord{ID: id, Value: "remote-" + id})
	}
	return p
}

func pending(ids ...string) []testRecord {
	out := make([]testRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, testRecord{ID: id, Value: "local-" + id, Status: models.SyncStatusPending})
	}
	return out
}

func strPtr(s string) *string { return &s }

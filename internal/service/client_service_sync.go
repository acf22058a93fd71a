// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/modelsync"
)

// Operation names a sync direction.
type Operation string

const (
	OperationSync Operation = "sync"
	OperationPush Operation = "push"
	OperationPull Operation = "pull"
)

// SyncReport is the outcome of one run of one entity.
type SyncReport struct {
	Entity     string
	Operation  Operation
	StartedAt  time.Time
	FinishedAt time.Time
	// Err is nil on success.
	Err error
}

// String renders the report as one line for the agent's one-shot summary.
func (r SyncReport) String() string {
	status := "ok"
	if r.Err != nil {
		status = "failed: " + r.Err.Error()
	}
	took := r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond)
	return fmt.Sprintf("%s %s %s in %s", r.Entity, r.Operation, status, took)
}

// syncService is the default [SyncService].
type syncService struct {
	entities []modelsync.ModelSync
	byName   map[string]modelsync.ModelSync
	locks    map[string]*sync.Mutex
	gate     SessionGate

	reportsMu sync.RWMutex
	reports   map[string]SyncReport

	now    func() time.Time
	logger *logger.Logger
}

// NewSyncService builds the orchestrator over entities. Entity names must be
// unique; they key the per-entity locks and reports.
func NewSyncService(gate SessionGate, log *logger.Logger, entities ...modelsync.ModelSync) (SyncService, error) {
	if gate == nil {
		return nil, fmt.Errorf("%w: session gate", ErrMissingDependency)
	}

	s := &syncService{
		entities: entities,
		byName:   make(map[string]modelsync.ModelSync, len(entities)),
		locks:    make(map[string]*sync.Mutex, len(entities)),
		gate:     gate,
		reports:  make(map[string]SyncReport, len(entities)),
		now:      time.Now,
		logger:   log,
	}

	for _, e := range entities {
		if e == nil {
			return nil, fmt.Errorf("%w: entity sync", ErrMissingDependency)
		}
		name := e.Name()
		if _, dup := s.byName[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntity, name)
		}
		s.byName[name] = e
		s.locks[name] = &sync.Mutex{}
	}

	return s, nil
}

func (s *syncService) SyncAll(ctx context.Context) error {
	return s.runMany(ctx, s.entities, OperationSync)
}

func (s *syncService) SyncCadence(ctx context.Context, cadence modelsync.Cadence) error {
	selected := make([]modelsync.ModelSync, 0, len(s.entities))
	for _, e := range s.entities {
		if e.Config().Cadence == cadence {
			selected = append(selected, e)
		}
	}
	return s.runMany(ctx, selected, OperationSync)
}

func (s *syncService) SyncEntity(ctx context.Context, name string) error {
	return s.runNamed(ctx, name, OperationSync)
}

func (s *syncService) PushEntity(ctx context.Context, name string) error {
	return s.runNamed(ctx, name, OperationPush)
}

func (s *syncService) PullEntity(ctx context.Context, name string) error {
	return s.runNamed(ctx, name, OperationPull)
}

func (s *syncService) LastSync(name string) (SyncReport, bool) {
	s.reportsMu.RLock()
	defer s.reportsMu.RUnlock()
	r, ok := s.reports[name]
	return r, ok
}

// runNamed runs one explicitly requested entity. Unlike scheduled runs, a
// gated entity without an approved session is reported as an error.
func (s *syncService) runNamed(ctx context.Context, name string, op Operation) error {
	e, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEntity, name)
	}
	if e.RequiresApprovedSession() && !s.gate.HasApprovedSession(ctx) {
		return fmt.Errorf("%s: %w", name, ErrSessionNotApproved)
	}
	return s.runOne(ctx, e, op)
}

// runMany runs entities concurrently. Gated entities are skipped while the
// session is not approved; the gate is asked once per run. Every failure is
// collected and none of them stops the other entities.
func (s *syncService) runMany(ctx context.Context, entities []modelsync.ModelSync, op Operation) error {
	approved, asked := false, false

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, e := range entities {
		if e.RequiresApprovedSession() {
			if !asked {
				approved, asked = s.gate.HasApprovedSession(ctx), true
			}
			if !approved {
				s.logger.Debug().
					Str("func", "syncService.runMany").
					Str("entity", e.Name()).
					Msg("skipping entity: session is not approved")
				continue
			}
		}

		wg.Add(1)
		go func(e modelsync.ModelSync) {
			defer wg.Done()
			if err := s.runOne(ctx, e, op); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(e)
	}

	wg.Wait()
	return errors.Join(errs...)
}

// runOne holds the entity lock for the duration of one run. A trigger that
// finds the lock taken gives up instead of queueing behind it.
func (s *syncService) runOne(ctx context.Context, e modelsync.ModelSync, op Operation) error {
	name := e.Name()

	lock := s.locks[name]
	if !lock.TryLock() {
		s.logger.Info().Str("func", "syncService.runOne").Str("entity", name).Msg("sync already in progress, skipping")
		return fmt.Errorf("%s: %w", name, ErrSyncInProgress)
	}
	defer lock.Unlock()

	report := SyncReport{Entity: name, Operation: op, StartedAt: s.now()}

	var err error
	switch op {
	case OperationPush:
		err = e.Push(ctx)
	case OperationPull:
		err = e.Pull(ctx)
	default:
		err = e.Sync(ctx)
	}

	report.FinishedAt = s.now()
	report.Err = err
	s.reportsMu.Lock()
	s.reports[name] = report
	s.reportsMu.Unlock()

	if err != nil {
		s.logger.Err(err).
			Str("func", "syncService.runOne").
			Str("entity", name).
			Str("operation", string(op)).
			Msg("entity sync failed")
		return err
	}

	s.logger.Info().
		Str("entity", name).
		Str("operation", string(op)).
		Dur("took", report.FinishedAt.Sub(report.StartedAt)).
		Msg("entity synced")
	return nil
}

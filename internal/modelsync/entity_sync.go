// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package modelsync

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-record-sync/internal/logger"
)

// EntitySync binds one record type to a [Coordinator]. It implements [ModelSync].
type EntitySync[T Record] struct {
	name        string
	config      Config
	repo        SynchronizableRepository[T]
	cursors     CursorStore
	transport   Transport[T]
	coordinator *Coordinator[T]
	logger      *logger.Logger
}

// NewEntitySync validates cfg and assembles the adapter of one entity type.
func NewEntitySync[T Record](
	name string,
	cfg Config,
	repo SynchronizableRepository[T],
	cursors CursorStore,
	transport Transport[T],
	log *logger.Logger,
) (*EntitySync[T], error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty entity name", ErrMissingDependency)
	}
	if repo == nil || cursors == nil || transport == nil {
		return nil, fmt.Errorf("%w: entity %q", ErrMissingDependency, name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sync config for %q: %w", name, err)
	}
	if log == nil {
		log = logger.Nop()
	}

	entityLog := log.WithEntity(name)

	return &EntitySync[T]{
		name:        name,
		config:      cfg,
		repo:        repo,
		cursors:     cursors,
		transport:   transport,
		coordinator: NewCoordinator[T](entityLog),
		logger:      entityLog,
	}, nil
}

func (e *EntitySync[T]) Name() string {
	return e.name
}

func (e *EntitySync[T]) Config() Config {
	return e.config
}

func (e *EntitySync[T]) RequiresApprovedSession() bool {
	return e.config.RequiresApprovedSession
}

// Push uploads the pending records of the entity.
func (e *EntitySync[T]) Push(ctx context.Context) error {
	if err := e.coordinator.Push(ctx, e.repo, e.transport.Push); err != nil {
		return fmt.Errorf("%s push: %w", e.name, err)
	}
	return nil
}

// Pull downloads remote changes of the entity using the configured batch size.
func (e *EntitySync[T]) Pull(ctx context.Context) error {
	if err := e.coordinator.Pull(ctx, e.repo, e.cursors, e.config.BatchSize, e.transport.Pull); err != nil {
		return fmt.Errorf("%s pull: %w", e.name, err)
	}
	return nil
}

// Sync runs Push and Pull concurrently. A failure of one direction neither
// cancels nor hides the other: Sync returns after both have finished, with
// their errors joined.
func (e *EntitySync[T]) Sync(ctx context.Context) error {
	var (
		wg      sync.WaitGroup
		pushErr error
		pullErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		pushErr = e.Push(ctx)
	}()
	go func() {
		defer wg.Done()
		pullErr = e.Pull(ctx)
	}()
	wg.Wait()

	err := errors.Join(pushErr, pullErr)
	if err != nil {
		e.logger.Err(err).Str("func", "EntitySync.Sync").Msg("sync finished with errors")
	}
	return err
}

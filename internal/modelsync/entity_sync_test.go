// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package modelsync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frequentConfig = Config{BatchSize: 2, Cadence: CadenceFrequent, RequiresApprovedSession: true}

func TestNewEntitySync_Validation(t *testing.T) {
	repo := newMemRepository()
	cursors := &memCursorStore{}
	transport := funcTransport{}

	tests := []struct {
		name      string
		entity    string
		cfg       Config
		repo      SynchronizableRepository[testRecord]
		cursors   CursorStore
		transport Transport[testRecord]
		wantErr   error
	}{
		{name: "empty name", entity: "", cfg: frequentConfig, repo: repo, cursors: cursors, transport: transport, wantErr: ErrMissingDependency},
		{name: "nil repository", entity: "e", cfg: frequentConfig, cursors: cursors, transport: transport, wantErr: ErrMissingDependency},
		{name: "nil cursor store", entity: "e", cfg: frequentConfig, repo: repo, transport: transport, wantErr: ErrMissingDependency},
		{name: "nil transport", entity: "e", cfg: frequentConfig, repo: repo, cursors: cursors, wantErr: ErrMissingDependency},
		{name: "zero batch size", entity: "e", cfg: Config{Cadence: CadenceDaily}, repo: repo, cursors: cursors, transport: transport, wantErr: ErrInvalidBatchSize},
		{name: "unknown cadence", entity: "e", cfg: Config{BatchSize: 1, Cadence: "hourly"}, repo: repo, cursors: cursors, transport: transport, wantErr: ErrInvalidCadence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEntitySync(tt.entity, tt.cfg, tt.repo, tt.cursors, tt.transport, logger.Nop())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEntitySync_Accessors(t *testing.T) {
	es, err := NewEntitySync[testRecord]("blood_sugars", frequentConfig, newMemRepository(), &memCursorStore{}, funcTransport{}, nil)
	require.NoError(t, err)

	assert.Equal(t, "blood_sugars", es.Name())
	assert.Equal(t, frequentConfig, es.Config())
	assert.True(t, es.RequiresApprovedSession())

	var _ ModelSync = es
}

func TestEntitySync_PushAndPullUseTransport(t *testing.T) {
	repo := newMemRepository(pending("A")...)
	cursors := &memCursorStore{}
	pull := &scriptedPull{pages: []PullPage[testRecord]{page("c1", "R")}}
	pushed := 0
	transport := funcTransport{
		push: func(_ context.Context, records []testRecord) ([]models.ValidationError, error) {
			pushed += len(records)
			return nil, nil
		},
		pull: pull.fn,
	}
	es, err := NewEntitySync[testRecord]("medical_histories", frequentConfig, repo, cursors, transport, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, es.Push(context.Background()))
	require.NoError(t, es.Pull(context.Background()))

	assert.Equal(t, 1, pushed)
	assert.Equal(t, models.SyncStatusDone, repo.status("A"))
	assert.Equal(t, models.SyncStatusDone, repo.status("R"))
	assert.Equal(t, "c1", cursors.cursor)
}

func TestEntitySync_ErrorsNameTheEntity(t *testing.T) {
	repo := newMemRepository(pending("A")...)
	transport := funcTransport{
		push: func(context.Context, []testRecord) ([]models.ValidationError, error) {
			return nil, errors.New("503")
		},
		pull: func(context.Context, int, *string) (PullPage[testRecord], error) {
			return PullPage[testRecord]{}, errors.New("504")
		},
	}
	es, err := NewEntitySync[testRecord]("facilities", frequentConfig, repo, &memCursorStore{}, transport, logger.Nop())
	require.NoError(t, err)

	assert.ErrorContains(t, es.Push(context.Background()), "facilities push")
	assert.ErrorContains(t, es.Pull(context.Background()), "facilities pull")
}

// TestEntitySync_Sync_FailingPushDoesNotBlockPull runs a push that only fails
// after the pull has finished. If the two directions ran one after another
// the push would wait forever.
func TestEntitySync_Sync_FailingPushDoesNotBlockPull(t *testing.T) {
	repo := newMemRepository(pending("A")...)
	cursors := &memCursorStore{}
	pullDone := make(chan struct{})
	pushErr := errors.New("server unavailable")

	transport := funcTransport{
		push: func(ctx context.Context, _ []testRecord) ([]models.ValidationError, error) {
			select {
			case <-pullDone:
			case <-time.After(5 * time.Second):
				return nil, errors.New("pull never completed")
			}
			return nil, pushErr
		},
		pull: func(context.Context, int, *string) (PullPage[testRecord], error) {
			defer close(pullDone)
			return page("c1", "R1"), nil
		},
	}
	es, err := NewEntitySync[testRecord]("blood_sugars", frequentConfig, repo, cursors, transport, logger.Nop())
	require.NoError(t, err)

	err = es.Sync(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, pushErr)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, models.SyncStatusDone, repo.status("R1"), "pull upsert must be committed")
	assert.Equal(t, models.SyncStatusPending, repo.status("A"), "failed push must not touch statuses")
	assert.Equal(t, "c1", cursors.cursor)
}

func TestEntitySync_Sync_ReportsBothFailures(t *testing.T) {
	repo := newMemRepository(pending("A")...)
	pushErr := errors.New("push refused")
	pullErr := errors.New("pull refused")
	transport := funcTransport{
		push: func(context.Context, []testRecord) ([]models.ValidationError, error) {
			return nil, pushErr
		},
		pull: func(context.Context, int, *string) (PullPage[testRecord], error) {
			return PullPage[testRecord]{}, pullErr
		},
	}
	es, err := NewEntitySync[testRecord]("blood_sugars", frequentConfig, repo, &memCursorStore{}, transport, logger.Nop())
	require.NoError(t, err)

	err = es.Sync(context.Background())

	assert.ErrorIs(t, err, pushErr)
	assert.ErrorIs(t, err, pullErr)
}

func TestEntitySync_Sync_Success(t *testing.T) {
	repo := newMemRepository(pending("A")...)
	transport := funcTransport{
		push: func(context.Context, []testRecord) ([]models.ValidationError, error) {
			return nil, nil
		},
		pull: func(context.Context, int, *string) (PullPage[testRecord], error) {
			return page("c1"), nil
		},
	}
	es, err := NewEntitySync[testRecord]("blood_sugars", frequentConfig, repo, &memCursorStore{}, transport, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, es.Sync(context.Background()))
	assert.Equal(t, models.SyncStatusDone, repo.status("A"))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/modelsync"
)

// FileCursors keeps the pull cursors of every entity in one JSON document
// of the form {"entity": "cursor"}. Writes replace the file atomically
// through a temporary file and rename, so a crash leaves either the old or
// the new document on disk.
type FileCursors struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileCursors returns cursor slots stored in the file at path. The file
// is created on the first Set.
func NewFileCursors(path string, log *logger.Logger) *FileCursors {
	return &FileCursors{path: path, logger: log}
}

// CursorStore returns the cursor slot of entity.
func (f *FileCursors) CursorStore(entity string) modelsync.CursorStore {
	return &fileCursorStore{cursors: f, entity: entity}
}

func (f *FileCursors) get(entity string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.load()
	if err != nil {
		return "", false, err
	}
	cursor, ok := all[entity]
	return cursor, ok, nil
}

func (f *FileCursors) set(entity, cursor string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.load()
	if err != nil {
		return err
	}
	all[entity] = cursor

	return f.save(all)
}

func (f *FileCursors) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading cursor file: %w", err)
	}

	all := make(map[string]string)
	if len(data) == 0 {
		return all, nil
	}
	if err = json.Unmarshal(data, &all); err != nil {
		f.logger.Err(err).Str("func", "FileCursors.load").Str("path", f.path).Msg("cursor file cannot be decoded")
		return nil, fmt.Errorf("%w: %w", ErrCorruptCursorFile, err)
	}
	return all, nil
}

func (f *FileCursors) save(all map[string]string) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding cursors: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating cursor dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temporary cursor file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing cursor file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error flushing cursor file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing cursor file: %w", err)
	}

	if err = os.Rename(tmp.Name(), f.path); err != nil {
		f.logger.Err(err).Str("func", "FileCursors.save").Str("path", f.path).Msg("failed to replace cursor file")
		return fmt.Errorf("error replacing cursor file: %w", err)
	}
	return nil
}

type fileCursorStore struct {
	cursors *FileCursors
	entity  string
}

func (c *fileCursorStore) Get(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	return c.cursors.get(c.entity)
}

func (c *fileCursorStore) Set(ctx context.Context, cursor string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.cursors.set(c.entity, cursor)
}

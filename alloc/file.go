// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package alloc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// fileData is the on-disk layout of a File store.
type fileData struct {
	Minted     []int    `json:"minted"`
	Collection []Record `json:"collection"`
}

// File is a Memory ledger persisted to a JSON file. Every successful
// Reserve or Save rewrites the file atomically. It is safe for concurrent
// use within one process.
type File struct {
	*Memory
	path string
}

// Open loads the store at path. A missing file is an empty store; it is
// created on the first change.
func Open(path string, opts ...Option) (*File, error) {
	f := &File{Memory: NewMemory(opts...), path: path}

	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("alloc: open %s: %w", path, err)
	}

	var fd fileData
	if err := json.Unmarshal(data, &fd); err != nil {
		return nil, fmt.Errorf("alloc: decode %s: %w", path, err)
	}
	for _, seed := range fd.Minted {
		if err := f.Memory.reserve(seed); err != nil && !errors.Is(err, ErrAlreadyMinted) {
			return nil, fmt.Errorf("alloc: load seed %d: %w", seed, err)
		}
	}
	f.Memory.records = fd.Collection
	return f, nil
}

// Path returns the file backing the store.
func (f *File) Path() string { return f.path }

// Reserve marks seed as minted and persists the ledger. If the write fails
// the reservation is undone.
func (f *File) Reserve(seed int) error {
	m := f.Memory
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.reserve(seed); err != nil {
		return err
	}
	if err := f.flush(); err != nil {
		m.release(seed)
		return err
	}
	return nil
}

// Save appends r to the collection and persists the ledger.
func (f *File) Save(r Record) error {
	m := f.Memory
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, r.clone())
	if err := f.flush(); err != nil {
		m.records = m.records[:len(m.records)-1]
		return err
	}
	return nil
}

// Remove drops the record with the given id and persists the ledger.
func (f *File) Remove(id int) error {
	m := f.Memory
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.remove(id)
	if err != nil {
		return err
	}
	if err := f.flush(); err != nil {
		m.records = append(m.records, r)
		return err
	}
	return nil
}

// flush writes the ledger to a temporary file and renames it over the
// store. Caller must hold f.mu.
func (f *File) flush() error {
	fd := fileData{Minted: f.order, Collection: f.records}
	if fd.Minted == nil {
		fd.Minted = []int{}
	}
	if fd.Collection == nil {
		fd.Collection = []Record{}
	}
	data, err := json.MarshalIndent(fd, "", "  ")
	if err != nil {
		return fmt.Errorf("alloc: encode: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("alloc: write %s: %w", f.path, err)
	}
	tmp, err := os.CreateTemp(dir, ".spiro-mints-*.tmp")
	if err != nil {
		return fmt.Errorf("alloc: write %s: %w", f.path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("alloc: write %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("alloc: write %s: %w", f.path, err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("alloc: write %s: %w", f.path, err)
	}
	return nil
}

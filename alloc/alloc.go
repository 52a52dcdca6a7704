// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package alloc keeps track of minted seeds and the collection of minted
// patterns.
//
// Memory holds the bookkeeping in process; File persists it to a JSON file
// after every change. Both satisfy spiro.SeedAllocator and spiro.SeedFinder.
package alloc

import (
	"errors"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/gogpu/spiro/pattern"
)

// Capacity is the number of seeds in the collection.
const Capacity = pattern.MaxSeed - pattern.MinSeed + 1

// probes is how many random seeds FindAvailable tries before scanning.
const probes = 100

var (
	// ErrSeedOutOfRange is returned for seeds outside [pattern.MinSeed, pattern.MaxSeed].
	ErrSeedOutOfRange = errors.New("alloc: seed out of range")

	// ErrAlreadyMinted is returned by Reserve for a seed that is taken.
	ErrAlreadyMinted = errors.New("alloc: design already minted")

	// ErrCollectionFull is returned by Reserve once every seed is taken.
	ErrCollectionFull = errors.New("alloc: all designs minted")

	// ErrNotInCollection is returned by Remove for an unknown record.
	ErrNotInCollection = errors.New("alloc: record not in collection")
)

// Option configures a store.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand sets the random source used by FindAvailable.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// Memory is an in-process seed ledger. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	minted  map[int]struct{}
	order   []int
	records []Record
	rng     *rand.Rand
}

// NewMemory creates an empty ledger.
func NewMemory(opts ...Option) *Memory {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Memory{
		minted: make(map[int]struct{}),
		rng:    o.rng,
	}
}

// IsAvailable reports whether seed is in range and not minted.
func (m *Memory) IsAvailable(seed int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.available(seed)
}

func (m *Memory) available(seed int) bool {
	if !pattern.ValidSeed(seed) {
		return false
	}
	_, taken := m.minted[seed]
	return !taken
}

// Reserve marks seed as minted.
func (m *Memory) Reserve(seed int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.reserve(seed)
}

func (m *Memory) reserve(seed int) error {
	if !pattern.ValidSeed(seed) {
		return ErrSeedOutOfRange
	}
	if len(m.minted) >= Capacity {
		return ErrCollectionFull
	}
	if _, taken := m.minted[seed]; taken {
		return ErrAlreadyMinted
	}
	m.minted[seed] = struct{}{}
	m.order = append(m.order, seed)
	return nil
}

// release undoes the most recent reserve of seed.
func (m *Memory) release(seed int) {
	delete(m.minted, seed)
	if i := slices.Index(m.order, seed); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
}

// Count returns the number of minted seeds.
func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.minted)
}

// Minted returns the minted seeds in reservation order.
func (m *Memory) Minted() []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.order)
}

// FindAvailable returns a seed that is not minted. A handful of random
// seeds are tried first so that consecutive calls spread over the
// collection; after that the collection is scanned from the first seed.
// It returns false when every seed is minted.
func (m *Memory) FindAvailable() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.minted) >= Capacity {
		return 0, false
	}
	for range probes {
		seed := pattern.MinSeed + m.intN(Capacity)
		if m.available(seed) {
			return seed, true
		}
	}
	for seed := pattern.MinSeed; seed <= pattern.MaxSeed; seed++ {
		if m.available(seed) {
			return seed, true
		}
	}
	return 0, false
}

func (m *Memory) intN(n int) int {
	if m.rng != nil {
		return m.rng.IntN(n)
	}
	return rand.IntN(n) //nolint:gosec // not security sensitive
}

// Save appends r to the collection.
func (m *Memory) Save(r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, r.clone())
	return nil
}

// Records returns the collection in the order records were saved.
func (m *Memory) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Record, len(m.records))
	for i, r := range m.records {
		out[i] = r.clone()
	}
	return out
}

// Remove drops the record with the given id from the collection, as when
// a minted design is sent to another owner. The seed stays minted.
func (m *Memory) Remove(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.remove(id)
	return err
}

func (m *Memory) remove(id int) (Record, error) {
	i := slices.IndexFunc(m.records, func(r Record) bool { return r.ID == id })
	if i < 0 {
		return Record{}, ErrNotInCollection
	}
	r := m.records[i]
	m.records = slices.Delete(m.records, i, i+1)
	return r, nil
}

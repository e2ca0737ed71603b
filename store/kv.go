// Package store holds the key-value persistence layer and the typed record
// collections built on top of it. Each collection is one JSON blob under one
// key; every operation is a whole-document read-modify-write. Last writer
// wins — concurrent writers to the same key can lose updates, which is
// acceptable for a single-user storefront process.
package store

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned when an operation addresses an id that does
	// not exist in the collection.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is returned by Insert when the record id is already
	// taken in the collection.
	ErrDuplicateID = errors.New("duplicate record id")
)

// KeyValue is a persistent string-keyed map. Implementations perform exactly
// one store-level write per Set, so a failed write leaves the prior value
// untouched.
type KeyValue interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// Memory is an in-process KeyValue for tests and ephemeral scopes.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Package store persists the items and orders collections as JSON arrays in
// a key-value byte store. Every write is a read-modify-write of the whole
// collection, which is fine for the single-user, single-device model this
// app targets: there is no per-record locking, and two writers from separate
// processes could lose an update. The mutex below only serializes writers
// within this process, since HTTP handlers call in from multiple goroutines.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Collection keys.
const (
	itemsKey  = "krina/items"
	ordersKey = "krina/orders"
)

var (
	// ErrNotFound is returned when an update targets an id that is not in
	// the collection.
	ErrNotFound = errors.New("record not found")

	// ErrCorrupt is returned when stored bytes fail to decode.
	ErrCorrupt = errors.New("stored data is corrupt")
)

// KV is the byte store backing the collections. Get returns nil (not an
// error) for absent keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Store owns the items and orders collections.
type Store struct {
	kv KV
	mu sync.Mutex

	now   func() time.Time
	newID func() string
}

// New creates a store over the given key-value backend.
func New(kv KV) *Store {
	return &Store{
		kv:    kv,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// ClearAll removes both collections. Used for full reset and testing.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Delete(ctx, itemsKey, ordersKey)
}

// loadCollection decodes the JSON array stored under key. An absent key
// reads as an empty collection.
func loadCollection[T any](ctx context.Context, kv KV, key string) ([]T, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	if raw == nil {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decoding %s: %w: %v", key, ErrCorrupt, err)
	}
	return records, nil
}

// saveCollection writes the whole collection back as one JSON array.
func saveCollection[T any](ctx context.Context, kv KV, key string, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Package inventory wraps the item collection with the load-once cache the
// seller screens work against.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/krinastore/krina/internal/model"
	"github.com/krinastore/krina/internal/store"
)

var (
	// ErrValidation is returned for bad input caught before the store is
	// touched.
	ErrValidation = errors.New("validation failed")

	// ErrOperationFailed is the generic failure surfaced for any store
	// error. The cause is logged, not propagated; callers can only retry.
	ErrOperationFailed = errors.New("operation failed")
)

// Service caches the item collection and owns all mutation of it. The cache
// must never be modified by anything but the service's own operations.
type Service struct {
	store *store.Store

	mu      sync.Mutex
	items   []model.Item
	loading bool
	loadErr error
}

// NewService creates the service. The cache is empty and marked loading
// until the first Load call resolves.
func NewService(st *store.Store) *Service {
	return &Service{store: st, loading: true}
}

// Load fetches the item collection into the cache. A failed load leaves the
// cache empty and sets the error state; calling Load again retries.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.loadErr = nil
	s.mu.Unlock()

	items, err := s.store.ListItems(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		slog.Error("loading items", "error", err)
		s.items = nil
		s.loadErr = ErrOperationFailed
		return ErrOperationFailed
	}
	s.items = items
	return nil
}

// Status reports the loading flag and the last load error, for render
// branching in the UI layer.
func (s *Service) Status() (loading bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading, s.loadErr
}

// Items returns a copy of the cached item list.
func (s *Service) Items() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Item(nil), s.items...)
}

// ItemByID looks up an item in the cache only; it never hits the store.
func (s *Service) ItemByID(id string) (model.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.Item{}, false
}

// Fields carries caller-supplied item fields for AddItem.
type Fields struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
	Unit     string
	Discount decimal.Decimal
	Image    string
}

// AddItem validates and normalizes the fields, inserts the item, and appends
// it to the cache on success.
func (s *Service) AddItem(ctx context.Context, f Fields) (model.Item, error) {
	item, err := normalize(f)
	if err != nil {
		return model.Item{}, err
	}

	stored, err := s.store.InsertItem(ctx, item)
	if err != nil {
		slog.Error("adding item", "name", item.Name, "error", err)
		return model.Item{}, ErrOperationFailed
	}

	s.mu.Lock()
	s.items = append(s.items, stored)
	s.mu.Unlock()
	return stored, nil
}

// UpdateItem validates the set patch fields, updates the store, and replaces
// the cached entry on success. Fields not present in the patch keep their
// stored value.
func (s *Service) UpdateItem(ctx context.Context, id string, patch store.ItemPatch) (model.Item, error) {
	if err := validatePatch(&patch); err != nil {
		return model.Item{}, err
	}

	stored, err := s.store.UpdateItem(ctx, id, patch)
	if err != nil {
		slog.Error("updating item", "id", id, "error", err)
		return model.Item{}, ErrOperationFailed
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = stored
			break
		}
	}
	s.mu.Unlock()
	return stored, nil
}

// DeleteItem removes the item from the store and the cache.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if err := s.store.DeleteItem(ctx, id); err != nil {
		slog.Error("deleting item", "id", id, "error", err)
		return ErrOperationFailed
	}

	s.mu.Lock()
	filtered := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	s.items = filtered
	s.mu.Unlock()
	return nil
}

// normalize trims and defaults the fields and rejects invalid values before
// anything reaches the store.
func normalize(f Fields) (model.Item, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return model.Item{}, fmt.Errorf("%w: name required", ErrValidation)
	}
	if f.Price.IsNegative() {
		return model.Item{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if f.Quantity < 0 {
		return model.Item{}, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if f.Discount.IsNegative() || f.Discount.GreaterThan(decimal.NewFromInt(100)) {
		return model.Item{}, fmt.Errorf("%w: discount must be between 0 and 100", ErrValidation)
	}

	unit := f.Unit
	if unit == "" {
		unit = model.DefaultUnit
	}
	if !model.ValidUnit(unit) {
		return model.Item{}, fmt.Errorf("%w: unknown unit %q", ErrValidation, unit)
	}

	return model.Item{
		Name:     name,
		Price:    f.Price,
		Quantity: f.Quantity,
		Unit:     unit,
		Discount: f.Discount,
		Image:    f.Image,
	}, nil
}

// validatePatch applies the same normalization rules to the fields a patch
// actually sets.
func validatePatch(patch *store.ItemPatch) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return fmt.Errorf("%w: name required", ErrValidation)
		}
		patch.Name = &name
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if patch.Discount != nil && (patch.Discount.IsNegative() || patch.Discount.GreaterThan(decimal.NewFromInt(100))) {
		return fmt.Errorf("%w: discount must be between 0 and 100", ErrValidation)
	}
	if patch.Unit != nil {
		if *patch.Unit == "" {
			unit := model.DefaultUnit
			patch.Unit = &unit
		} else if !model.ValidUnit(*patch.Unit) {
			return fmt.Errorf("%w: unknown unit %q", ErrValidation, *patch.Unit)
		}
	}
	return nil
}

package store

import (
	"context"
	"time"

	"github.com/krinastore/krina/internal/model"
)

// ListOrders returns every order in insertion order.
func (s *Store) ListOrders(ctx context.Context) ([]model.Order, error) {
	return loadCollection[model.Order](ctx, s.kv, ordersKey)
}

// InsertOrder assigns an id and timestamps, appends the order, and returns
// the stored record. The caller-set status is preserved as-is.
func (s *Store) InsertOrder(ctx context.Context, order model.Order) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := loadCollection[model.Order](ctx, s.kv, ordersKey)
	if err != nil {
		return model.Order{}, err
	}

	now := s.now().UTC()
	order.ID = s.newID()
	order.CreatedAt = now
	order.UpdatedAt = now

	orders = append(orders, order)
	if err := saveCollection(ctx, s.kv, ordersKey, orders); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// OrderPatch lists the order fields an update may change. Items and total
// are frozen snapshots and cannot be patched.
type OrderPatch struct {
	Status  *string
	Address *string
	Notes   *string
}

// UpdateOrder merges the patch over the stored record and returns the
// result. Returns ErrNotFound if no order has the given id.
func (s *Store) UpdateOrder(ctx context.Context, id string, patch OrderPatch) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := loadCollection[model.Order](ctx, s.kv, ordersKey)
	if err != nil {
		return model.Order{}, err
	}

	idx := -1
	for i := range orders {
		if orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.Order{}, ErrNotFound
	}

	order := &orders[idx]
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.Address != nil {
		order.Address = *patch.Address
	}
	if patch.Notes != nil {
		order.Notes = *patch.Notes
	}
	order.UpdatedAt = s.now().UTC()

	if err := saveCollection(ctx, s.kv, ordersKey, orders); err != nil {
		return model.Order{}, err
	}
	return *order, nil
}

// Export bundles both collections for backup.
type Export struct {
	Items      []model.Item  `json:"items"`
	Orders     []model.Order `json:"orders"`
	ExportedAt time.Time     `json:"exportedAt"`
}

// ExportAll returns a snapshot of both collections.
func (s *Store) ExportAll(ctx context.Context) (*Export, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return &Export{
		Items:      items,
		Orders:     orders,
		ExportedAt: s.now().UTC(),
	}, nil
}

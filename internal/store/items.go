package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/krinastore/krina/internal/model"
)

// ListItems returns every item in insertion order.
func (s *Store) ListItems(ctx context.Context) ([]model.Item, error) {
	return loadCollection[model.Item](ctx, s.kv, itemsKey)
}

// InsertItem assigns an id and timestamps, appends the item to the
// collection, and returns the stored record.
func (s *Store) InsertItem(ctx context.Context, item model.Item) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Item](ctx, s.kv, itemsKey)
	if err != nil {
		return model.Item{}, err
	}

	now := s.now().UTC()
	item.ID = s.newID()
	item.CreatedAt = now
	item.UpdatedAt = now

	items = append(items, item)
	if err := saveCollection(ctx, s.kv, itemsKey, items); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// ItemPatch lists the item fields an update may change. Nil fields keep
// their stored value. Id and createdAt are immutable.
type ItemPatch struct {
	Name     *string
	Price    *decimal.Decimal
	Quantity *int
	Unit     *string
	Discount *decimal.Decimal
	Image    *string
}

// UpdateItem merges the patch over the stored record and returns the result.
// Returns ErrNotFound if no item has the given id.
func (s *Store) UpdateItem(ctx context.Context, id string, patch ItemPatch) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Item](ctx, s.kv, itemsKey)
	if err != nil {
		return model.Item{}, err
	}

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.Item{}, ErrNotFound
	}

	item := &items[idx]
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.Discount != nil {
		item.Discount = *patch.Discount
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}
	item.UpdatedAt = s.now().UTC()

	if err := saveCollection(ctx, s.kv, itemsKey, items); err != nil {
		return model.Item{}, err
	}
	return *item, nil
}

// DeleteItem removes the item with the given id. Deleting an absent id is a
// no-op, not an error.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Item](ctx, s.kv, itemsKey)
	if err != nil {
		return err
	}

	filtered := items[:0]
	for _, item := range items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	return saveCollection(ctx, s.kv, itemsKey, filtered)
}

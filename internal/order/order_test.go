package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/krinastore/krina/internal/db"
	"github.com/krinastore/krina/internal/model"
	"github.com/krinastore/krina/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(store.New(db.NewTestKV(t)))
}

// brokenKV fails every operation.
type brokenKV struct{}

func (brokenKV) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (brokenKV) Put(ctx context.Context, key string, value []byte) error {
	return errors.New("disk on fire")
}

func (brokenKV) Delete(ctx context.Context, keys ...string) error {
	return errors.New("disk on fire")
}

func draft() Draft {
	return Draft{
		Items: []model.CartLine{
			{ItemID: "rice", Name: "Rice", Price: decimal.NewFromInt(100), Qty: 2},
		},
		Total:          decimal.NewFromInt(210),
		Discount:       decimal.NewFromInt(20),
		DeliveryCharge: decimal.NewFromInt(30),
		Address:        "12 Market Road",
		PaymentMethod:  model.PaymentCOD,
	}
}

func TestAddDefaultsAndStatus(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	s.Load(ctx)

	order, err := s.Add(ctx, draft())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if order.UserID != DefaultUserID {
		t.Errorf("expected default user %q, got %q", DefaultUserID, order.UserID)
	}
	if order.Status != model.StatusPlaced {
		t.Errorf("expected initial status placed, got %q", order.Status)
	}
	if order.ID == "" || order.CreatedAt.IsZero() {
		t.Error("expected assigned id and timestamps")
	}
}

func TestAddValidation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	s.Load(ctx)

	empty := draft()
	empty.Items = nil
	if _, err := s.Add(ctx, empty); !errors.Is(err, ErrValidation) {
		t.Errorf("empty cart: expected ErrValidation, got %v", err)
	}

	noAddress := draft()
	noAddress.Address = "  "
	if _, err := s.Add(ctx, noAddress); !errors.Is(err, ErrValidation) {
		t.Errorf("missing address: expected ErrValidation, got %v", err)
	}

	badPayment := draft()
	badPayment.PaymentMethod = "cheque"
	if _, err := s.Add(ctx, badPayment); !errors.Is(err, ErrValidation) {
		t.Errorf("bad payment method: expected ErrValidation, got %v", err)
	}

	if len(s.Orders()) != 0 {
		t.Error("validation failures must not create orders")
	}
}

func TestCacheIsMostRecentFirst(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	s.Load(ctx)

	first, _ := s.Add(ctx, draft())
	second, _ := s.Add(ctx, draft())

	orders := s.Orders()
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Error("expected newest order first")
	}
}

func TestLoadReversesStoreOrder(t *testing.T) {
	st := store.New(db.NewTestKV(t))
	ctx := context.Background()

	writer := NewService(st)
	writer.Load(ctx)
	first, _ := writer.Add(ctx, draft())
	second, _ := writer.Add(ctx, draft())

	// A fresh service loading from the same store sees the same ordering.
	reader := NewService(st)
	if err := reader.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	orders := reader.Orders()
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Error("expected newest order first after reload")
	}
}

func TestUpdateStatus(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	s.Load(ctx)

	order, _ := s.Add(ctx, draft())

	status := model.StatusDelivered
	updated, err := s.Update(ctx, order.ID, store.OrderPatch{Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != model.StatusDelivered {
		t.Errorf("expected delivered, got %q", updated.Status)
	}

	if got := s.Orders()[0]; got.Status != model.StatusDelivered {
		t.Errorf("cache not replaced: %q", got.Status)
	}

	bogus := "teleported"
	if _, err := s.Update(ctx, order.ID, store.OrderPatch{Status: &bogus}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for unknown status, got %v", err)
	}
}

func TestHistoryFiltersByUser(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	s.Load(ctx)

	mine := draft()
	s.Add(ctx, mine)

	other := draft()
	other.UserID = "someone-else"
	s.Add(ctx, other)

	history := s.History(ctx, "")
	if len(history) != 1 {
		t.Fatalf("expected 1 order for the default user, got %d", len(history))
	}
	if history[0].UserID != DefaultUserID {
		t.Errorf("wrong user: %q", history[0].UserID)
	}
}

func TestHistoryEmptyOnFailure(t *testing.T) {
	s := NewService(store.New(brokenKV{}))

	history := s.History(context.Background(), DefaultUserID)
	if history == nil || len(history) != 0 {
		t.Errorf("expected empty (non-nil) history on failure, got %v", history)
	}
}

// Package order converts priced carts into persisted orders and serves
// order history. Orders are never deleted; history is the audit trail.
package order

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

// DefaultUserID is the placeholder identity used when no user is known.
// There is no real multi-user account system; login is a stub.
const DefaultUserID = "customer"

var (
	// ErrValidation is returned for bad input caught before the store is
	// touched.
	ErrValidation = errors.New("validation failed")

	// ErrOperationFailed is the generic failure surfaced for any store
	// error. The cause is logged, not propagated.
	ErrOperationFailed = errors.New("operation failed")
)

// Service caches the order collection most-recent-first and owns all
// mutation of it.
type Service struct {
	store *store.Store

	mu      sync.Mutex
	orders  []model.Order
	loading bool
	loadErr error
}

// NewService creates the service. The cache is empty and marked loading
// until the first Load call resolves.
func NewService(st *store.Store) *Service {
	return &Service{store: st, loading: true}
}

// Load fetches the order collection into the cache, newest first.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.loadErr = nil
	s.mu.Unlock()

	orders, err := s.store.ListOrders(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		slog.Error("loading orders", "error", err)
		s.orders = nil
		s.loadErr = ErrOperationFailed
		return ErrOperationFailed
	}

	// The store keeps insertion order; the cache shows newest first.
	reversed := make([]model.Order, len(orders))
	for i, o := range orders {
		reversed[len(orders)-1-i] = o
	}
	s.orders = reversed
	return nil
}

// Status reports the loading flag and the last load error.
func (s *Service) Status() (loading bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading, s.loadErr
}

// Orders returns a copy of the cached order list, newest first.
func (s *Service) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Order(nil), s.orders...)
}

// Draft carries everything needed to place an order: the cart snapshot, the
// computed totals, and the checkout form fields.
type Draft struct {
	Items          []model.CartLine
	Total          decimal.Decimal
	Discount       decimal.Decimal
	DeliveryCharge decimal.Decimal
	Address        string
	PaymentMethod  string
	UserID         string
	Notes          string
}

// Add validates the draft, persists it with status placed, and prepends the
// new order to the cache.
func (s *Service) Add(ctx context.Context, d Draft) (model.Order, error) {
	if len(d.Items) == 0 {
		return model.Order{}, fmt.Errorf("%w: order has no items", ErrValidation)
	}
	address := strings.TrimSpace(d.Address)
	if address == "" {
		return model.Order{}, fmt.Errorf("%w: delivery address required", ErrValidation)
	}
	if !model.ValidPaymentMethod(d.PaymentMethod) {
		return model.Order{}, fmt.Errorf("%w: unknown payment method %q", ErrValidation, d.PaymentMethod)
	}
	if d.Total.IsNegative() {
		return model.Order{}, fmt.Errorf("%w: total must not be negative", ErrValidation)
	}

	userID := d.UserID
	if userID == "" {
		userID = DefaultUserID
	}

	stored, err := s.store.InsertOrder(ctx, model.Order{
		Items:          d.Items,
		Total:          d.Total,
		Discount:       d.Discount,
		DeliveryCharge: d.DeliveryCharge,
		Address:        address,
		PaymentMethod:  d.PaymentMethod,
		UserID:         userID,
		Status:         model.StatusPlaced,
		Notes:          d.Notes,
	})
	if err != nil {
		slog.Error("adding order", "user", userID, "error", err)
		return model.Order{}, ErrOperationFailed
	}

	s.mu.Lock()
	s.orders = append([]model.Order{stored}, s.orders...)
	s.mu.Unlock()
	return stored, nil
}

// Update patches an order and replaces the cached entry on success. Only
// status and administrative fields can change; the items and total snapshot
// is frozen at creation.
func (s *Service) Update(ctx context.Context, id string, patch store.OrderPatch) (model.Order, error) {
	if patch.Status != nil && !model.ValidStatus(*patch.Status) {
		return model.Order{}, fmt.Errorf("%w: unknown status %q", ErrValidation, *patch.Status)
	}

	stored, err := s.store.UpdateOrder(ctx, id, patch)
	if err != nil {
		slog.Error("updating order", "id", id, "error", err)
		return model.Order{}, ErrOperationFailed
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i] = stored
			break
		}
	}
	s.mu.Unlock()
	return stored, nil
}

// History returns the user's orders from the store, newest first. Failures
// are logged and reported as an empty history rather than an error.
func (s *Service) History(ctx context.Context, userID string) []model.Order {
	if userID == "" {
		userID = DefaultUserID
	}

	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		slog.Error("loading order history", "user", userID, "error", err)
		return []model.Order{}
	}

	history := []model.Order{}
	for i := len(orders) - 1; i >= 0; i-- {
		if orders[i].UserID == userID {
			history = append(history, orders[i])
		}
	}
	return history
}

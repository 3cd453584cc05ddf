package api

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/krinastore/krina/internal/cart"
	"github.com/krinastore/krina/internal/model"
	"github.com/krinastore/krina/internal/order"
	"github.com/krinastore/krina/internal/store"
)

// Fixed delivery charge (could become configurable later).
var deliveryCharge = decimal.NewFromInt(30)

// OrdersHandler handles checkout and order history.
type OrdersHandler struct {
	Orders *order.Service
	Carts  *cart.Registry
}

type checkoutRequest struct {
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}

// Checkout handles POST /api/checkout: it prices the caller's cart, adds the
// delivery charge, persists the order, and clears the cart on success.
func (h *OrdersHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := GetClaims(r.Context())
	c := h.Carts.Cart(claims.UserID)
	totals := c.Totals()

	placed, err := h.Orders.Add(r.Context(), order.Draft{
		Items:          c.Lines(),
		Total:          totals.Total.Add(deliveryCharge),
		Discount:       totals.Discount,
		DeliveryCharge: deliveryCharge,
		Address:        req.Address,
		PaymentMethod:  req.PaymentMethod,
		UserID:         claims.UserID,
		Notes:          req.Notes,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	c.Clear()
	jsonResponse(w, http.StatusCreated, placed)
}

type orderListResponse struct {
	Orders  []model.Order `json:"orders"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
}

// List handles GET /api/orders: the caller's order history, newest first.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	loading, loadErr := h.Orders.Status()

	resp := orderListResponse{
		Orders:  h.Orders.History(r.Context(), claims.UserID),
		Loading: loading,
	}
	if loadErr != nil {
		resp.Error = "failed to load orders"
	}
	jsonResponse(w, http.StatusOK, resp)
}

type updateOrderRequest struct {
	Status  *string `json:"status"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// Update handles PUT /api/orders/{id}. The seller screen uses this to move
// an order through its statuses; items and total stay frozen.
func (h *OrdersHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Orders.Update(r.Context(), r.PathValue("id"), store.OrderPatch{
		Status:  req.Status,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, updated)
}

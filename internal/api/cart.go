package api

import (
	"net/http"

	"github.com/krinastore/krina/internal/cart"
	"github.com/krinastore/krina/internal/inventory"
	"github.com/krinastore/krina/internal/model"
)

// CartHandler handles the customer cart endpoints. Each identity gets its
// own cart from the registry.
type CartHandler struct {
	Carts     *cart.Registry
	Inventory *inventory.Service
}

type cartView struct {
	Lines  []model.CartLine `json:"lines"`
	Coupon *model.Coupon    `json:"coupon,omitempty"`
	Totals cart.Totals      `json:"totals"`
}

func (h *CartHandler) cart(r *http.Request) *cart.Cart {
	return h.Carts.Cart(GetClaims(r.Context()).UserID)
}

func view(c *cart.Cart) cartView {
	return cartView{Lines: c.Lines(), Coupon: c.Coupon(), Totals: c.Totals()}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, view(h.cart(r)))
}

type addToCartRequest struct {
	ID string `json:"id"`
}

// AddItem handles POST /api/cart/items. The item's current catalog fields
// are snapshotted into the line.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, ok := h.Inventory.ItemByID(req.ID)
	if !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	c := h.cart(r)
	c.Add(item)
	jsonResponse(w, http.StatusOK, view(c))
}

type updateQuantityRequest struct {
	Delta int `json:"delta"`
}

// UpdateQuantity handles PUT /api/cart/items/{id}/quantity. Quantity floors
// at 1; removing a line goes through RemoveItem.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c := h.cart(r)
	c.UpdateQuantity(r.PathValue("id"), req.Delta)
	jsonResponse(w, http.StatusOK, view(c))
}

// RemoveItem handles DELETE /api/cart/items/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c := h.cart(r)
	c.Remove(r.PathValue("id"))
	jsonResponse(w, http.StatusOK, view(c))
}

type applyCouponRequest struct {
	Code string `json:"code"`
}

// ApplyCoupon handles POST /api/cart/coupon. An unrecognized code leaves any
// active coupon untouched.
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req applyCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c := h.cart(r)
	if !c.ApplyCoupon(req.Code) {
		jsonError(w, http.StatusBadRequest, "invalid coupon code")
		return
	}
	jsonResponse(w, http.StatusOK, view(c))
}

// ClearCoupon handles DELETE /api/cart/coupon.
func (h *CartHandler) ClearCoupon(w http.ResponseWriter, r *http.Request) {
	c := h.cart(r)
	c.ClearCoupon()
	jsonResponse(w, http.StatusOK, view(c))
}

package api

import (
	"net/http"

	"github.com/krinastore/krina/internal/cart"
	"github.com/krinastore/krina/internal/inventory"
	"github.com/krinastore/krina/internal/order"
	"github.com/krinastore/krina/internal/store"
)

// NewRouter creates the API router with all endpoints registered. Every
// request passes through the identity middleware; no route requires a token.
func NewRouter(st *store.Store, inv *inventory.Service, ord *order.Service, carts *cart.Registry, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{Inventory: inv}
	cartHandler := &CartHandler{Carts: carts, Inventory: inv}
	ordersHandler := &OrdersHandler{Orders: ord, Carts: carts}
	adminHandler := &AdminHandler{Store: st, Inventory: inv, Orders: ord}

	// Stub login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Catalog (seller screens).
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("PUT /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("DELETE /api/items/{id}", itemsHandler.Delete)

	// Cart (customer screens).
	mux.HandleFunc("GET /api/cart", cartHandler.Get)
	mux.HandleFunc("POST /api/cart/items", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/cart/items/{id}/quantity", cartHandler.UpdateQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{id}", cartHandler.RemoveItem)
	mux.HandleFunc("POST /api/cart/coupon", cartHandler.ApplyCoupon)
	mux.HandleFunc("DELETE /api/cart/coupon", cartHandler.ClearCoupon)

	// Checkout and history.
	mux.HandleFunc("POST /api/checkout", ordersHandler.Checkout)
	mux.HandleFunc("GET /api/orders", ordersHandler.List)
	mux.HandleFunc("PUT /api/orders/{id}", ordersHandler.Update)

	// Backup and reset.
	mux.HandleFunc("GET /api/export", adminHandler.Export)
	mux.HandleFunc("POST /api/reset", adminHandler.Reset)

	return Identity(jwtSecret)(mux)
}

package api

import (
	"net/http"

	"github.com/krinastore/krina/internal/inventory"
	"github.com/krinastore/krina/internal/order"
	"github.com/krinastore/krina/internal/store"
)

// AdminHandler handles the backup and reset endpoints.
type AdminHandler struct {
	Store     *store.Store
	Inventory *inventory.Service
	Orders    *order.Service
}

// Export handles GET /api/export: a snapshot of both collections.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	export, err := h.Store.ExportAll(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to export data")
		return
	}
	jsonResponse(w, http.StatusOK, export)
}

// Reset handles POST /api/reset: clears both collections and reloads the
// service caches. Meant for testing and full device reset.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.ClearAll(r.Context()); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to clear data")
		return
	}

	h.Inventory.Load(r.Context())
	h.Orders.Load(r.Context())
	jsonResponse(w, http.StatusOK, map[string]string{"message": "all data cleared"})
}

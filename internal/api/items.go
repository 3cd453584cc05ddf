package api

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/krinastore/krina/internal/inventory"
	"github.com/krinastore/krina/internal/model"
	"github.com/krinastore/krina/internal/store"
)

// ItemsHandler handles the catalog CRUD endpoints the seller screens use.
type ItemsHandler struct {
	Inventory *inventory.Service
}

type createItemRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Unit     string          `json:"unit"`
	Discount decimal.Decimal `json:"discount"`
	Image    string          `json:"image"`
}

type updateItemRequest struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int             `json:"quantity"`
	Unit     *string          `json:"unit"`
	Discount *decimal.Decimal `json:"discount"`
	Image    *string          `json:"image"`
}

type itemListResponse struct {
	Items   []model.Item `json:"items"`
	Loading bool         `json:"loading"`
	Error   string       `json:"error,omitempty"`
}

// List handles GET /api/items. If a previous load failed, this retries it,
// which is the retry affordance the UI shows on a failed load.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, loadErr := h.Inventory.Status(); loadErr != nil {
		h.Inventory.Load(r.Context())
	}

	loading, loadErr := h.Inventory.Status()
	resp := itemListResponse{Items: h.Inventory.Items(), Loading: loading}
	if loadErr != nil {
		resp.Error = "failed to load items"
	}
	jsonResponse(w, http.StatusOK, resp)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Inventory.AddItem(r.Context(), inventory.Fields{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Discount: req.Discount,
		Image:    req.Image,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}. Lookup is against the loaded cache.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, ok := h.Inventory.ItemByID(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}. Absent fields keep their stored value.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Inventory.UpdateItem(r.Context(), r.PathValue("id"), store.ItemPatch{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Discount: req.Discount,
		Image:    req.Image,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Inventory.DeleteItem(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

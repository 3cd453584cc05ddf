package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/krinastore/krina/internal/inventory"
	"github.com/krinastore/krina/internal/order"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("error encoding response: %v", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// serviceError maps service failures onto HTTP statuses. Validation problems
// carry their detail to the client; anything else is a generic failure with
// the cause already logged by the service.
func serviceError(w http.ResponseWriter, err error) {
	if errors.Is(err, inventory.ErrValidation) || errors.Is(err, order.ErrValidation) {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	jsonError(w, http.StatusInternalServerError, "operation failed")
}

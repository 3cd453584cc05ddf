package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/krinastore/krina/internal/auth"
)

// AuthHandler handles the stub login endpoint. There are no stored accounts:
// any plausible email and password yield a session token, which only serves
// to attribute carts and orders to an identity.
type AuthHandler struct {
	JWTSecret string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		jsonError(w, http.StatusBadRequest, "valid email required")
		return
	}
	if len(req.Password) < 6 {
		jsonError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	role := req.Role
	if role == "" {
		role = auth.RoleCustomer
	}
	if role != auth.RoleCustomer && role != auth.RoleSeller {
		jsonError(w, http.StatusBadRequest, "unknown role")
		return
	}

	// The role doubles as the user id: one shared identity per role, same
	// as the app's fixed placeholder identity.
	token, err := auth.GenerateToken(h.JWTSecret, role, role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("stub login", "email", email, "role", role)
	jsonResponse(w, http.StatusOK, loginResponse{Token: token, UserID: role, Role: role})
}

package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bierecode/backend/internal/model"
	"github.com/bierecode/backend/internal/repository"
	"github.com/bierecode/backend/internal/service"
	"github.com/bierecode/backend/pkg/auth"
)

// UserHandler serves /api/users for the admin console. Every method is
// admin-only.
type UserHandler struct {
	svc service.AdminUserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc service.AdminUserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := auth.UserIDFromContext(r.Context()); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false
	}
	if !auth.TierForRole(auth.RoleFromContext(r.Context())).CanManageUsers() {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return false
	}
	return true
}

// List handles GET /api/users: all accounts, creation time ascending,
// no credential material in the projection.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		slog.Error("user list failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []*model.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

type setRoleRequest struct {
	ID   string  `json:"id"`
	Role *string `json:"role"`
}

// SetRole handles PATCH and PUT /api/users. The role must be a member
// of the closed set {"", "manager", "admin"}; the empty string clears
// the role.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req setRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.ID == "" || req.Role == nil {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}
	if !auth.ValidRole(*req.Role) {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	user, err := h.svc.SetRole(r.Context(), req.ID, *req.Role)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("role update failed", "id", req.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

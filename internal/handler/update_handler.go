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
	"github.com/go-playground/validator/v10"
)

// UpdateHandler serves /api/updates. Reads are public; every mutation
// requires a manager-or-admin session and is checked in the order
// method, authentication, authorization, payload.
type UpdateHandler struct {
	svc      service.UpdateService
	validate *validator.Validate
}

// NewUpdateHandler creates an UpdateHandler.
func NewUpdateHandler(svc service.UpdateService) *UpdateHandler {
	return &UpdateHandler{svc: svc, validate: validator.New()}
}

// requireManager enforces authentication then the manager-or-admin tier
// for mutating requests. It writes the error response itself and
// returns the acting user id on success.
func requireManager(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}
	if !auth.TierForRole(auth.RoleFromContext(r.Context())).CanManageUpdates() {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return "", false
	}
	return userID, true
}

func (h *UpdateHandler) storeConfigured(w http.ResponseWriter) bool {
	if h.svc == nil {
		http.Error(w, "Update storage is not configured", http.StatusInternalServerError)
		return false
	}
	return true
}

// List handles GET /api/updates. An `id` query parameter short-circuits
// the language/type/tag filters and returns the single record.
func (h *UpdateHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.storeConfigured(w) {
		return
	}

	q := r.URL.Query()
	if id := q.Get("id"); id != "" {
		update, err := h.svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				http.Error(w, "Not Found", http.StatusNotFound)
				return
			}
			slog.Error("update fetch failed", "id", id, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, update)
		return
	}

	updates, err := h.svc.List(r.Context(), service.UpdateFilter{
		Language: q.Get("language"),
		Type:     q.Get("type"),
		Tag:      q.Get("tag"),
	})
	if err != nil {
		slog.Error("update list failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updates)
}

type createUpdateRequest struct {
	Title    string              `json:"title" validate:"required"`
	Content  string              `json:"content" validate:"required"`
	Language string              `json:"language" validate:"required"`
	Type     string              `json:"type" validate:"required,oneof=post event"`
	Tags     []string            `json:"tags"`
	Event    *model.EventDetails `json:"event"`
}

// Create handles POST /api/updates (manager/admin).
func (h *UpdateHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireManager(w, r)
	if !ok {
		return
	}
	if !h.storeConfigured(w) {
		return
	}

	var req createUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	update := &model.Update{
		Title:    req.Title,
		Content:  req.Content,
		Language: req.Language,
		Type:     req.Type,
		Tags:     req.Tags,
		Event:    req.Event,
		AuthorID: userID,
	}
	if err := h.svc.Create(r.Context(), update); err != nil {
		slog.Error("update create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, update)
}

type patchUpdateRequest struct {
	ID       string              `json:"id"`
	Title    *string             `json:"title"`
	Content  *string             `json:"content"`
	Language *string             `json:"language"`
	Type     *string             `json:"type"`
	Tags     *[]string           `json:"tags"`
	Event    *model.EventDetails `json:"event"`
}

// Patch handles PUT and PATCH /api/updates (manager/admin). Fields the
// caller leaves out keep their stored value; tags and event are
// replaced wholesale when supplied.
func (h *UpdateHandler) Patch(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireManager(w, r); !ok {
		return
	}
	if !h.storeConfigured(w) {
		return
	}

	var req patchUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		http.Error(w, "Missing id", http.StatusBadRequest)
		return
	}
	if req.Type != nil && *req.Type != model.UpdateTypePost && *req.Type != model.UpdateTypeEvent {
		http.Error(w, "Invalid type", http.StatusBadRequest)
		return
	}

	existing, err := h.svc.GetByID(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("update fetch failed", "id", req.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Content != nil {
		existing.Content = *req.Content
	}
	if req.Language != nil {
		existing.Language = *req.Language
	}
	if req.Type != nil {
		existing.Type = *req.Type
	}
	if req.Tags != nil {
		existing.Tags = *req.Tags
	}
	if req.Event != nil {
		existing.Event = req.Event
	}

	if err := h.svc.Save(r.Context(), existing); err != nil {
		slog.Error("update save failed", "id", req.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

type deleteUpdateRequest struct {
	ID string `json:"id"`
}

// Delete handles DELETE /api/updates (manager/admin). Hard delete, no
// tombstone.
func (h *UpdateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireManager(w, r); !ok {
		return
	}
	if !h.storeConfigured(w) {
		return
	}

	var req deleteUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		http.Error(w, "Missing id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("update delete failed", "id", req.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

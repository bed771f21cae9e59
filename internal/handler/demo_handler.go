package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bierecode/backend/internal/model"
	"github.com/bierecode/backend/internal/service"
	"github.com/go-playground/validator/v10"
)

// DemoHandler serves /api/demo-days. Both methods are unauthenticated.
// The storage binding is optional: when it is absent the handler
// reports a configuration error instead of crashing.
type DemoHandler struct {
	svc      service.DemoService
	validate *validator.Validate
}

// NewDemoHandler creates a DemoHandler. svc may be nil when the demo
// storage binding is not configured.
func NewDemoHandler(svc service.DemoService) *DemoHandler {
	return &DemoHandler{svc: svc, validate: validator.New()}
}

func (h *DemoHandler) storeConfigured(w http.ResponseWriter) bool {
	if h.svc == nil {
		http.Error(w, "Demo storage is not configured", http.StatusInternalServerError)
		return false
	}
	return true
}

// List handles GET /api/demo-days: all submissions, newest first.
func (h *DemoHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.storeConfigured(w) {
		return
	}

	subs, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("demo list failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

type createDemoRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Project     string `json:"project" validate:"required"`
	Description string `json:"description" validate:"required"`
	Link        string `json:"link"`
}

// Create handles POST /api/demo-days.
func (h *DemoHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.storeConfigured(w) {
		return
	}

	var req createDemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	sub := &model.DemoSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Project:     req.Project,
		Description: req.Description,
		Link:        req.Link,
	}
	if err := h.svc.Create(r.Context(), sub); err != nil {
		slog.Error("demo create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

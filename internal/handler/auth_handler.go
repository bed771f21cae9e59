package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bierecode/backend/internal/repository"
	"github.com/bierecode/backend/internal/service"
	"github.com/bierecode/backend/pkg/auth"
	"github.com/go-playground/validator/v10"
)

// AuthHandler serves /api/auth: email/password registration, login,
// logout and session introspection.
type AuthHandler struct {
	authService service.AuthService
	sessions    *service.SessionService
	validate    *validator.Validate
	secure      bool
}

// NewAuthHandler creates an AuthHandler. secure controls the cookie
// Secure flag.
func NewAuthHandler(authService service.AuthService, sessions *service.SessionService, secure bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		validate:    validator.New(),
		secure:      secure,
	}
}

type registerRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	AutoSignIn bool   `json:"autoSignIn"`
}

// Register handles POST /api/auth/register. When autoSignIn is set the
// new account gets a session cookie immediately.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Invalid registration payload", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			http.Error(w, "Email already registered", http.StatusConflict)
			return
		}
		slog.Error("registration failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if req.AutoSignIn {
		if err := h.startSession(w, r, user.ID); err != nil {
			slog.Error("auto sign-in failed", "user_id", user.ID, "error", err)
		}
	}
	writeJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Missing credentials", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		slog.Error("login failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.startSession(w, r, user.ID); err != nil {
		slog.Error("session create failed", "user_id", user.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout. Always clears the cookie even
// when the token is already gone server side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil && cookie.Value != "" {
		if err := h.sessions.DeleteSession(r.Context(), cookie.Value); err != nil {
			slog.Warn("session delete failed", "error", err)
		}
	}
	http.SetCookie(w, auth.ExpiredSessionCookie(h.secure))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Session handles GET /api/auth/session: returns the authenticated
// account or 401.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.SetCookie(w, auth.ExpiredSessionCookie(h.secure))
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		slog.Error("session lookup failed", "user_id", userID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// startSession issues a session for the user and sets the cookie. The
// X-Forwarded-For header has already been normalized by the session
// middleware.
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, userID string) error {
	session, err := h.sessions.CreateSession(r.Context(), userID, r.Header.Get("X-Forwarded-For"), r.UserAgent())
	if err != nil {
		return err
	}
	http.SetCookie(w, auth.SessionCookie(session.Token, h.secure))
	return nil
}

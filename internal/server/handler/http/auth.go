// Package http provides HTTP handlers for user registration, login and
// task management.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/taskwarden/internal/apperrors"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new user from the given credentials.
	// Returns apperrors.ErrConflict if the username is taken.
	Register(ctx context.Context, username, password string) error
	// Login verifies the credentials and returns a signed session token.
	// Returns apperrors.ErrInvalidCredentials on any credential mismatch.
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
	// Log records handler-boundary failures; details are never sent to callers.
	Log *zap.Logger
}

// CredentialsRequest represents the JSON payload for registration and login.
type CredentialsRequest struct {
	// Username is the login name of the user.
	Username string `json:"username"`
	// Password is the plaintext password; it is hashed before storage.
	Password string `json:"password"`
}

// Register handles POST /api/register requests.
// It expects a JSON body with non-empty "username" and "password" fields.
// Responds 201 on success, 409 if the username is taken, 500 otherwise.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if errors.Is(err, apperrors.ErrConflict) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "username already exists"})
		return
	}
	if err != nil {
		h.Log.Error("register failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Login handles POST /api/login requests.
// On success it responds with a JSON body {"token": "..."} carrying the
// session token. An unknown username and a wrong password both yield 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.Log.Error("login failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}

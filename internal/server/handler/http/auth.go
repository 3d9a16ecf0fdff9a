// Package http provides HTTP handlers for authentication, catalog
// administration, the find-event ledger, and the leaderboard.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/MacguffinTracker/internal/models"
	"github.com/atinyakov/MacguffinTracker/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Login verifies credentials and returns a session token and the user.
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	// Register creates a non-admin user and returns a session token and the user.
	Register(ctx context.Context, email, password string) (string, *models.User, error)
}

// AuthHandler handles HTTP requests for login and registration.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// CredentialsRequest represents the JSON payload for login and registration.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the success payload of both auth endpoints.
type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login handles POST /auth/login.
// It expects a JSON body with non-empty "email" and "password" fields and
// responds with a session token and the user on success. Unknown email and
// wrong password are indistinguishable 401s.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		http.Error(w, "email and password required", http.StatusBadRequest)
		return
	}

	tok, user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(authResponse{Token: tok, User: user})
}

// Register handles POST /auth/register.
// It expects a JSON body with non-empty "email" and "password" fields.
// A duplicate email is a 400.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		http.Error(w, "email and password required", http.StatusBadRequest)
		return
	}

	tok, user, err := h.AuthService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			http.Error(w, "email already registered", http.StatusBadRequest)
			return
		}
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(authResponse{Token: tok, User: user})
}

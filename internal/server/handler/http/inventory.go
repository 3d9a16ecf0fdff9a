// Package http provides HTTP handlers for the find-event ledger.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/MacguffinTracker/internal/middleware"
	"github.com/atinyakov/MacguffinTracker/internal/models"
	"github.com/atinyakov/MacguffinTracker/internal/service"
)

// InventoryService defines the interface for ledger operations
// required by the InventoryHandler.
type InventoryService interface {
	// RecordFind appends a find event attributed to the given identity.
	RecordFind(ctx context.Context, userID, userEmail string, macguffinID int64) (*models.FindEvent, error)
	// ListInventory retrieves the user's find events, most recent first.
	ListInventory(ctx context.Context, userID string) ([]models.FindEvent, error)
}

// InventoryHandler handles HTTP requests for a user's personal inventory.
// Both endpoints sit behind token authentication in the router.
type InventoryHandler struct {
	InventoryService InventoryService
}

// recordRequest represents the JSON payload for recording a find.
type recordRequest struct {
	MacguffinID int64 `json:"macguffin_id"`
}

// List handles GET /api/user/inventory.
// It returns the authenticated user's find events, newest first.
// An empty inventory is a valid result.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentityFromContext(r.Context())
	if identity == nil {
		http.Error(w, "no token provided", http.StatusUnauthorized)
		return
	}

	events, err := h.InventoryService.ListInventory(r.Context(), identity.UserID)
	if err != nil {
		http.Error(w, "failed to fetch inventory", http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []models.FindEvent{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

// Record handles POST /api/user/inventory.
// It expects a JSON body with a non-zero "macguffin_id" and records a find
// attributed to the authenticated user. An unknown macguffin is a 404.
func (h *InventoryHandler) Record(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentityFromContext(r.Context())
	if identity == nil {
		http.Error(w, "no token provided", http.StatusUnauthorized)
		return
	}

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MacguffinID == 0 {
		http.Error(w, "macguffin_id required", http.StatusBadRequest)
		return
	}

	event, err := h.InventoryService.RecordFind(r.Context(), identity.UserID, identity.Email, req.MacguffinID)
	if err != nil {
		if errors.Is(err, service.ErrMacguffinNotFound) {
			http.Error(w, "macguffin not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to add macguffin", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success":   true,
		"macguffin": event.MacguffinName,
	})
}

// Package http provides HTTP handlers for catalog administration.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/MacguffinTracker/internal/models"
)

// CatalogService defines the interface for catalog operations
// required by the CatalogHandler.
type CatalogService interface {
	// List retrieves all catalog entries ordered by name.
	List(ctx context.Context) ([]models.Macguffin, error)
	// Create adds a catalog entry and returns it with its assigned id.
	Create(ctx context.Context, name string) (*models.Macguffin, error)
	// Rename changes the name of the entry with the given id.
	Rename(ctx context.Context, id int64, name string) (*models.Macguffin, error)
	// Delete removes the entry with the given id.
	Delete(ctx context.Context, id int64) error
}

// CatalogHandler handles HTTP requests for the macguffin catalog.
// Listing is public; all mutations sit behind the admin gate in the router.
type CatalogHandler struct {
	CatalogService CatalogService
}

// nameRequest represents the JSON payload for create and rename.
type nameRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/macguffins. Publicly readable.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	macguffins, err := h.CatalogService.List(r.Context())
	if err != nil {
		http.Error(w, "failed to fetch macguffins", http.StatusInternalServerError)
		return
	}
	if macguffins == nil {
		macguffins = []models.Macguffin{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(macguffins)
}

// Create handles POST /api/macguffins.
// It expects a JSON body with a non-empty "name" field.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}

	macguffin, err := h.CatalogService.Create(r.Context(), req.Name)
	if err != nil {
		http.Error(w, "failed to create macguffin", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(macguffin)
}

// Rename handles PUT /api/macguffins/{id}.
// Renaming an unknown id affects zero rows and still reports success.
func (h *CatalogHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}

	macguffin, err := h.CatalogService.Rename(r.Context(), id, req.Name)
	if err != nil {
		http.Error(w, "failed to update macguffin", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(macguffin)
}

// Delete handles DELETE /api/macguffins/{id}.
// Ledger rows referencing the id keep their name snapshots. Deleting an
// unknown id still reports success.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.CatalogService.Delete(r.Context(), id); err != nil {
		http.Error(w, "failed to delete macguffin", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

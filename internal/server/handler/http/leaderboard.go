// Package http provides the HTTP handler for the leaderboard view.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/atinyakov/MacguffinTracker/internal/models"
)

// LeaderboardService defines the interface required by the LeaderboardHandler.
type LeaderboardService interface {
	// Compute returns all users ranked by find count, descending.
	Compute(ctx context.Context) ([]models.LeaderboardEntry, error)
}

// LeaderboardHandler handles HTTP requests for the global leaderboard.
type LeaderboardHandler struct {
	LeaderboardService LeaderboardService
}

// Get handles GET /api/leaderboard. Publicly readable.
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	entries, err := h.LeaderboardService.Compute(r.Context())
	if err != nil {
		http.Error(w, "failed to fetch leaderboard", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}

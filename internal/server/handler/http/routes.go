// Package http provides HTTP routing and middleware configuration
// for the macguffin tracker service.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/atinyakov/MacguffinTracker/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the macguffin
// tracker API. It applies JSON content-type enforcement and request logging
// globally, and token authentication on the protected groups.
//
// Parameters:
//
//	authHandler        - handler for login and registration endpoints
//	catalogHandler     - handler for catalog listing and administration
//	inventoryHandler   - handler for the personal inventory endpoints
//	leaderboardHandler - handler for the leaderboard endpoint
//	tokenSecret        - HMAC secret verifying session tokens
//	logger             - structured logger for request logging middleware
//
// Routes:
//
//	GET    /api/health          → health probe (public)
//	POST   /auth/login          → authHandler.Login (public)
//	POST   /auth/register       → authHandler.Register (public)
//	GET    /api/macguffins      → catalogHandler.List (public)
//	POST   /api/macguffins      → catalogHandler.Create (admin)
//	PUT    /api/macguffins/{id} → catalogHandler.Rename (admin)
//	DELETE /api/macguffins/{id} → catalogHandler.Delete (admin)
//	GET    /api/leaderboard     → leaderboardHandler.Get (public)
//	GET    /api/user/inventory  → inventoryHandler.List (user token)
//	POST   /api/user/inventory  → inventoryHandler.Record (user token)
func NewRouter(
	authHandler *AuthHandler,
	catalogHandler *CatalogHandler,
	inventoryHandler *InventoryHandler,
	leaderboardHandler *LeaderboardHandler,
	tokenSecret []byte,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/register", authHandler.Register)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"status":  "ok",
				"message": "Macguffin Tracker API is running",
			})
		})

		// Public reads
		r.Get("/macguffins", catalogHandler.List)
		r.Get("/leaderboard", leaderboardHandler.Get)

		// Protected group: requires a valid session token
		r.Group(func(r chi.Router) {
			r.Use(middleware.TokenAuth(tokenSecret))

			r.Get("/user/inventory", inventoryHandler.List)
			r.Post("/user/inventory", inventoryHandler.Record)

			// Admin group: catalog mutations
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Post("/macguffins", catalogHandler.Create)
				r.Put("/macguffins/{id}", catalogHandler.Rename)
				r.Delete("/macguffins/{id}", catalogHandler.Delete)
			})
		})
	})

	return r
}

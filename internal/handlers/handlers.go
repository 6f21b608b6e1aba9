package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ThePyromage/dungeonGenerator/internal/generation"
	"github.com/ThePyromage/dungeonGenerator/internal/middleware"
	"github.com/ThePyromage/dungeonGenerator/internal/services"
	"github.com/ThePyromage/dungeonGenerator/internal/ws"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(svc *services.DungeonService, hub *ws.Hub) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	// Initialize handlers
	dungeonHandler := NewDungeonHandler(svc, hub)
	streamHandler := NewStreamHandler(svc, hub)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/dungeon", dungeonHandler.GetDungeon)
		r.Get("/dungeon/view", dungeonHandler.GetViewport)
		r.Post("/dungeons", dungeonHandler.CreateDungeon)
		r.Post("/dungeons/batch", dungeonHandler.CreateBatch)

		// Websocket stream of generated dungeons
		r.Get("/stream", streamHandler.Stream)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"status":   "ok",
				"cached":   svc.Cached(),
				"watchers": hub.Len(),
			})
		})
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondGenerationError maps a service error to a status code
func respondGenerationError(w http.ResponseWriter, err error) {
	switch {
	case generation.IsConfigError(err),
		errors.Is(err, services.ErrTooLarge),
		errors.Is(err, services.ErrBatchSize):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Error generating dungeon: %v", err)
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/ThePyromage/dungeonGenerator/internal/generation"
	"github.com/ThePyromage/dungeonGenerator/internal/models"
	"github.com/ThePyromage/dungeonGenerator/internal/render"
	"github.com/ThePyromage/dungeonGenerator/internal/services"
	"github.com/ThePyromage/dungeonGenerator/internal/ws"
)

// DungeonHandler handles dungeon generation endpoints
type DungeonHandler struct {
	service *services.DungeonService
	hub     *ws.Hub
}

// NewDungeonHandler creates a new DungeonHandler
func NewDungeonHandler(svc *services.DungeonService, hub *ws.Hub) *DungeonHandler {
	return &DungeonHandler{
		service: svc,
		hub:     hub,
	}
}

// GetDungeon handles GET /api/dungeon - generates from query parameters
func (h *DungeonHandler) GetDungeon(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.queryConfig(w, r)
	if !ok {
		return
	}

	d, err := h.service.Generate(r.Context(), cfg)
	if err != nil {
		respondGenerationError(w, err)
		return
	}
	h.announce(d)

	switch r.URL.Query().Get("format") {
	case "ascii":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		opts := render.Options{Regions: parseBoolParam(r, "regions")}
		if _, err := w.Write([]byte(render.ASCII(d, h.service.Palette(), opts))); err != nil {
			log.Printf("Error writing ASCII: %v", err)
		}
	case "tiles":
		respondJSON(w, http.StatusOK, h.service.TileGrid(d, parseBoolParam(r, "regions")))
	default:
		respondJSON(w, http.StatusOK, h.service.BuildResponse(d, responseOptions(r)))
	}
}

// GetViewport handles GET /api/dungeon/view - a window of a generated dungeon.
// The response carries the seed so later windows can be taken from the same dungeon.
func (h *DungeonHandler) GetViewport(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.queryConfig(w, r)
	if !ok {
		return
	}

	d, err := h.service.Generate(r.Context(), cfg)
	if err != nil {
		respondGenerationError(w, err)
		return
	}
	h.announce(d)

	// Clamp to reasonable values
	width := clamp(parseIntParam(r, "view_width", 21), 3, 101)
	height := clamp(parseIntParam(r, "view_height", 11), 3, 101)
	center := models.Position{
		X: parseIntParam(r, "x", d.Width()/2),
		Y: parseIntParam(r, "y", d.Height()/2),
	}

	viewport := h.service.Viewport(d, center, width, height, parseBoolParam(r, "regions"))
	respondJSON(w, http.StatusOK, viewport)
}

// CreateDungeon handles POST /api/dungeons - generates from a JSON config.
// Fields left out of the body keep the service defaults.
func (h *DungeonHandler) CreateDungeon(w http.ResponseWriter, r *http.Request) {
	cfg := h.service.Defaults()
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	d, err := h.service.Generate(r.Context(), cfg)
	if err != nil {
		respondGenerationError(w, err)
		return
	}
	h.announce(d)

	respondJSON(w, http.StatusCreated, h.service.BuildResponse(d, responseOptions(r)))
}

// CreateBatch handles POST /api/dungeons/batch - generates many dungeons at once
func (h *DungeonHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	req := models.BatchRequest{Config: h.service.Defaults(), Count: 1}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dungeons, err := h.service.GenerateBatch(r.Context(), req.Config, req.Count)
	if err != nil {
		respondGenerationError(w, err)
		return
	}

	resp := models.BatchResponse{Dungeons: make([]models.DungeonSummary, 0, len(dungeons))}
	for _, d := range dungeons {
		h.announce(d)
		resp.Dungeons = append(resp.Dungeons, services.Summary(d))
	}
	respondJSON(w, http.StatusCreated, resp)
}

// announce tells stream watchers about a generated dungeon
func (h *DungeonHandler) announce(d *generation.Dungeon) {
	if err := h.hub.Publish("Generated", services.Summary(d)); err != nil {
		log.Printf("Error publishing dungeon: %v", err)
	}
}

// queryConfig builds a config from query parameters on top of the defaults.
// Writes a 400 and returns false when the seed cannot be parsed.
func (h *DungeonHandler) queryConfig(w http.ResponseWriter, r *http.Request) (generation.Config, bool) {
	cfg := h.service.Defaults()
	cfg.Width = parseIntParam(r, "width", cfg.Width)
	cfg.Height = parseIntParam(r, "height", cfg.Height)
	cfg.RoomGenTries = parseIntParam(r, "tries", cfg.RoomGenTries)
	cfg.ExtraConnectorChance = parseIntParam(r, "extra_connector", cfg.ExtraConnectorChance)
	cfg.ExtraRoomSize = parseIntParam(r, "extra_room_size", cfg.ExtraRoomSize)
	cfg.WindingPercent = parseIntParam(r, "winding", cfg.WindingPercent)

	if val := r.URL.Query().Get("seed"); val != "" {
		seed, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid seed")
			return cfg, false
		}
		cfg.Seed = &seed
	}
	return cfg, true
}

func responseOptions(r *http.Request) services.ResponseOptions {
	return services.ResponseOptions{
		Regions: parseBoolParam(r, "regions"),
		Graph:   parseBoolParam(r, "graph"),
	}
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// parseBoolParam reports whether a query flag is set to a true value
func parseBoolParam(r *http.Request, name string) bool {
	b, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && b
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

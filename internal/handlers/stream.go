package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/ThePyromage/dungeonGenerator/internal/models"
	"github.com/ThePyromage/dungeonGenerator/internal/services"
	"github.com/ThePyromage/dungeonGenerator/internal/ws"
)

// StreamHandler serves the websocket stream of generated dungeons
type StreamHandler struct {
	service *services.DungeonService
	hub     *ws.Hub
}

// NewStreamHandler creates a new StreamHandler
func NewStreamHandler(svc *services.DungeonService, hub *ws.Hub) *StreamHandler {
	return &StreamHandler{
		service: svc,
		hub:     hub,
	}
}

// Stream handles GET /api/stream. Clients receive a "Generated" event for
// every dungeon the service produces and may send "Generate" intents.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("Error accepting stream: %v", err)
		return
	}
	h.hub.Add(conn)
	defer h.hub.Remove(conn)
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := r.Context()
	send := func(eventType string, payload any) error {
		return ws.Send(ctx, conn, eventType, payload)
	}
	if err := send("Ready", h.service.Defaults()); err != nil {
		return
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
				log.Printf("Error reading stream: %v", err)
			}
			return
		}

		if err := h.handleIntent(ctx, data, send); err != nil {
			log.Printf("Error replying to stream: %v", err)
			return
		}
	}
}

// sendFunc writes one envelope to the stream client
type sendFunc func(eventType string, payload any) error

// handleIntent acts on one client message. Only a failed write to the client is returned.
func (h *StreamHandler) handleIntent(ctx context.Context, data []byte, send sendFunc) error {
	var env models.IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return send("Rejected", models.StreamError{Error: "invalid envelope"})
	}

	switch env.Type {
	case "Generate":
		cfg := h.service.Defaults()
		if len(env.Payload) > 0 {
			if err := json.Unmarshal(env.Payload, &cfg); err != nil {
				return send("Rejected", models.StreamError{Error: "invalid payload"})
			}
		}

		d, err := h.service.Generate(ctx, cfg)
		if err != nil {
			return send("Rejected", models.StreamError{Error: err.Error()})
		}
		if err := h.hub.Publish("Generated", services.Summary(d)); err != nil {
			log.Printf("Error publishing dungeon: %v", err)
		}
		return nil

	default:
		return send("Rejected", models.StreamError{Error: "unknown intent " + env.Type})
	}
}

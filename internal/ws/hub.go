// Package ws fans generated dungeons out to websocket watchers.
package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/ThePyromage/dungeonGenerator/internal/models"
)

// writeTimeout bounds how long one slow client can hold up a broadcast
const writeTimeout = 3 * time.Second

// Hub tracks connected stream clients
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	sequence uint64
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// Add registers a client
func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

// Remove forgets a client
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Len returns how many clients are connected
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends message to every client, dropping any that fail to take it
func (h *Hub) Broadcast(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcast(message)
}

// broadcast writes to every client. Callers hold h.mu.
func (h *Hub) broadcast(message []byte) {
	for conn := range h.clients {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, conn)
		}
	}
}

// Publish wraps payload in a numbered envelope and broadcasts it.
// Clients receive envelopes in sequence order.
func (h *Hub) Publish(eventType string, payload any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	b, err := json.Marshal(models.PatchEnvelope{Sequence: h.sequence + 1, Type: eventType, Payload: payload})
	if err != nil {
		return err
	}
	h.sequence++
	h.broadcast(b)
	return nil
}

// Send writes a single envelope to one client
func Send(ctx context.Context, conn *websocket.Conn, eventType string, payload any) error {
	b, err := json.Marshal(models.PatchEnvelope{Type: eventType, Payload: payload})
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, b)
}

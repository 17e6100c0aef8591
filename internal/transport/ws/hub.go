package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/taskhub/backend/internal/domain"
	"github.com/taskhub/backend/internal/infrastructure/logger"
)

// Conn is the slice of the websocket connection the hub writes to.
// *websocket.Conn satisfies it, and tests can substitute a fake.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
}

// Hub tracks connected subscribers and fans events out to all of them.
// Delivery is best-effort: a failed write is logged and skipped, with
// no queuing or retry. The lock also serializes writes so concurrent
// broadcasts never interleave on one connection.
type Hub struct {
	mu          sync.Mutex
	subscribers map[Conn]struct{}
	log         *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		subscribers: make(map[Conn]struct{}),
		log:         log,
	}
}

func (h *Hub) Register(c Conn) {
	h.mu.Lock()
	h.subscribers[c] = struct{}{}
	count := len(h.subscribers)
	h.mu.Unlock()

	h.log.Infow("ws_client_connected", "subscribers", count)
}

func (h *Hub) Unregister(c Conn) {
	h.mu.Lock()
	delete(h.subscribers, c)
	count := len(h.subscribers)
	h.mu.Unlock()

	h.log.Infow("ws_client_disconnected", "subscribers", count)
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

func (h *Hub) Broadcast(event string, data any) {
	payload, err := json.Marshal(domain.Event{Event: event, Data: data})
	if err != nil {
		h.log.Errorw("ws_broadcast_encode_failed", "event", event, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.subscribers {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.Warnw("ws_broadcast_write_failed", "event", event, "error", err)
		}
	}

	h.log.Infow("ws_broadcast_ok", "event", event, "subscribers", len(h.subscribers))
}

package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/taskhub/backend/internal/infrastructure/logger"
	"github.com/taskhub/backend/internal/transport/ws"
)

type WSHandler struct {
	hub    *ws.Hub
	logger *logger.Logger
}

func NewWSHandler(hub *ws.Hub, logger *logger.Logger) *WSHandler {
	return &WSHandler{hub: hub, logger: logger}
}

// Handle keeps the connection subscribed to broadcasts until the client
// goes away. There is no client-to-server protocol; the read loop only
// exists to detect the close.
func (h *WSHandler) Handle(c *websocket.Conn) {
	h.hub.Register(c)
	defer h.hub.Unregister(c)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

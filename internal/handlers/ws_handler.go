package handlers

import (
	"cityresponse/pkg/logger"
	"cityresponse/pkg/websocket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WebSocketHandler struct {
	hub    *websocket.Hub
	logger *logger.Logger
}

func NewWebSocketHandler(hub *websocket.Hub, log *logger.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    hub,
		logger: log,
	}
}

// HandleConnection upgrades to a websocket session that receives incident
// change events. A client-supplied session ID is optional.
func (h *WebSocketHandler) HandleConnection(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = primitive.NewObjectID().Hex()
	}

	if err := websocket.Serve(h.hub, c.Writer, c.Request, sessionID); err != nil {
		h.logger.WithError(err).Error("WebSocket upgrade failed")
	}
}

package routes

import (
	"cityresponse/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupWebSocketRoutes sets up the incident event stream endpoint
func SetupWebSocketRoutes(r *gin.RouterGroup, wsHandler *handlers.WebSocketHandler) {
	r.GET("/ws", wsHandler.HandleConnection)
}

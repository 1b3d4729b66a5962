package routes

import (
	"cityresponse/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupZoneRoutes sets up routes for the zone catalog and classification
func SetupZoneRoutes(r *gin.RouterGroup, zoneHandler *handlers.ZoneHandler) {
	zones := r.Group("/zones")
	{
		zones.GET("/", zoneHandler.ListZones)
		zones.GET("/classify", zoneHandler.Classify)
	}
}

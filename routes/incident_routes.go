package routes

import (
	"cityresponse/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupIncidentRoutes sets up routes for incident reporting and lifecycle
func SetupIncidentRoutes(r *gin.RouterGroup, incidentHandler *handlers.IncidentHandler, dispatchHandler *handlers.DispatchHandler) {
	incidents := r.Group("/incidents")
	{
		incidents.POST("/", incidentHandler.CreateIncident)
		incidents.GET("/", incidentHandler.ListIncidents)
		incidents.GET("/:id", incidentHandler.GetIncident)
		incidents.GET("/:id/routes", dispatchHandler.GetIncidentRoutes)

		// Admin lifecycle actions
		incidents.PUT("/:id/schedule", incidentHandler.ScheduleResponse)
		incidents.PUT("/:id/resolve", incidentHandler.ResolveIncident)
	}
}

package routes

import (
	"cityresponse/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupDispatchRoutes sets up routes for route computation and display
func SetupDispatchRoutes(r *gin.RouterGroup, dispatchHandler *handlers.DispatchHandler) {
	dispatch := r.Group("/dispatch")
	{
		dispatch.POST("/routes", dispatchHandler.ComputeRoute)
		dispatch.GET("/routes/displayed", dispatchHandler.DisplayedRoute)
		dispatch.DELETE("/routes/displayed", dispatchHandler.ClearDisplayedRoute)
	}
}

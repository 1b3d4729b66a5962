package handlers

import (
	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"
	"cityresponse/internal/services"
	"cityresponse/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DispatchHandler struct {
	dispatchService services.DispatchService
	routeRepo       interfaces.RouteRepository
}

func NewDispatchHandler(dispatchService services.DispatchService, routeRepo interfaces.RouteRepository) *DispatchHandler {
	return &DispatchHandler{
		dispatchService: dispatchService,
		routeRepo:       routeRepo,
	}
}

type computeRouteRequest struct {
	Origin      *models.Coordinate `json:"origin"`
	Destination models.Coordinate  `json:"destination"`
	IncidentID  *string            `json:"incident_id"`
}

// ComputeRoute computes (and optionally persists) a dispatch route.
func (h *DispatchHandler) ComputeRoute(c *gin.Context) {
	var request computeRouteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	var incidentID *primitive.ObjectID
	if request.IncidentID != nil && *request.IncidentID != "" {
		id, err := primitive.ObjectIDFromHex(*request.IncidentID)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid incident ID")
			return
		}
		incidentID = &id
	}

	result, err := h.dispatchService.ComputeRoute(c.Request.Context(), request.Origin, request.Destination, incidentID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Route computed successfully", result)
}

// DisplayedRoute returns the route currently held for display.
func (h *DispatchHandler) DisplayedRoute(c *gin.Context) {
	route := h.dispatchService.DisplayedRoute()
	if route == nil {
		utils.NotFoundResponse(c, "Displayed route")
		return
	}

	utils.SuccessResponse(c, "Displayed route", route)
}

// ClearDisplayedRoute drops the display flag.
func (h *DispatchHandler) ClearDisplayedRoute(c *gin.Context) {
	h.dispatchService.ClearDisplayedRoute()
	utils.NoContentResponse(c)
}

// GetIncidentRoutes lists all persisted routes for an incident, newest first.
func (h *DispatchHandler) GetIncidentRoutes(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid incident ID")
		return
	}

	routes, err := h.routeRepo.GetByIncidentID(c.Request.Context(), id)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Incident routes", routes)
}

package handlers

import (
	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"
	"cityresponse/internal/services"
	"cityresponse/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IncidentHandler struct {
	incidentService services.IncidentService
}

func NewIncidentHandler(incidentService services.IncidentService) *IncidentHandler {
	return &IncidentHandler{
		incidentService: incidentService,
	}
}

type createIncidentRequest struct {
	ReporterID  string      `json:"reporter_id" binding:"required"`
	Title       string      `json:"title" binding:"required,min=3,max=200"`
	Description string      `json:"description"`
	Priority    string      `json:"priority"`
	Coordinate  interface{} `json:"coordinate"`
}

// CreateIncident accepts a citizen report. The coordinate field is lenient:
// an object, a [lng, lat] pair or a "lat,lng" string all parse.
func (h *IncidentHandler) CreateIncident(c *gin.Context) {
	var request createIncidentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	reporterID, err := primitive.ObjectIDFromHex(request.ReporterID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid reporter ID")
		return
	}

	priority := models.IncidentPriority(request.Priority)
	if request.Priority == "" {
		priority = models.IncidentPriorityMedium
	} else if !priority.IsValid() {
		utils.BadRequestResponse(c, "Invalid priority")
		return
	}

	input := &services.CreateIncidentInput{
		ReporterID:  reporterID,
		Title:       request.Title,
		Description: request.Description,
		Priority:    priority,
	}

	if request.Coordinate != nil {
		coordinate, err := models.ParseCoordinate(request.Coordinate)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid coordinate: "+err.Error())
			return
		}
		input.Coordinate = &coordinate
	}

	incident, err := h.incidentService.CreateReport(c.Request.Context(), input)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Incident report created", incident)
}

// GetIncident returns one incident by ID.
func (h *IncidentHandler) GetIncident(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid incident ID")
		return
	}

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Incident", incident)
}

// ListIncidents returns a filtered, paginated incident list.
func (h *IncidentHandler) ListIncidents(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := &interfaces.IncidentFilter{
		Status:   models.IncidentStatus(c.Query("status")),
		ZoneName: c.Query("zone"),
		Priority: models.IncidentPriority(c.Query("priority")),
	}

	incidents, total, err := h.incidentService.ListIncidents(c.Request.Context(), filter, params)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Incidents", incidents, &utils.Meta{
		Pagination: utils.CalculatePaginationMeta(params, total),
		Count:      len(incidents),
	})
}

type scheduleResponseRequest struct {
	ScheduledResponseTime string `json:"scheduled_response_time" binding:"required"`
}

// ScheduleResponse records the admin-chosen response time for an incident.
func (h *IncidentHandler) ScheduleResponse(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid incident ID")
		return
	}

	var request scheduleResponseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.incidentService.ScheduleResponse(c.Request.Context(), id, request.ScheduledResponseTime); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Response scheduled", gin.H{
		"incident_id":             id.Hex(),
		"scheduled_response_time": request.ScheduledResponseTime,
	})
}

// ResolveIncident marks an incident resolved. Resolution is final.
func (h *IncidentHandler) ResolveIncident(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid incident ID")
		return
	}

	if err := h.incidentService.ResolveIncident(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Incident resolved", gin.H{"incident_id": id.Hex()})
}

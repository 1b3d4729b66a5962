package handlers

import (
	"errors"
	"net/http"

	"cityresponse/internal/services"
	"cityresponse/internal/utils"

	"github.com/gin-gonic/gin"
)

// serviceErrorResponse maps the service failure taxonomy onto HTTP codes.
func serviceErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidDestination):
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, services.ErrStateConflict):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, services.ErrRouteUnavailable):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "ROUTE_UNAVAILABLE", err.Error())
	case errors.Is(err, services.ErrNetwork):
		utils.ErrorResponse(c, http.StatusBadGateway, "ROUTING_SERVICE_UNAVAILABLE", err.Error())
	case errors.Is(err, services.ErrPersistence):
		utils.ErrorResponse(c, http.StatusInternalServerError, "PERSISTENCE_ERROR", err.Error())
	default:
		utils.InternalServerErrorResponse(c)
	}
}

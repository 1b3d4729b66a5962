package handlers

import (
	"strconv"

	"cityresponse/internal/models"
	"cityresponse/internal/services"
	"cityresponse/internal/utils"

	"github.com/gin-gonic/gin"
)

type ZoneHandler struct {
	classifier services.ClassifierService
}

func NewZoneHandler(classifier services.ClassifierService) *ZoneHandler {
	return &ZoneHandler{
		classifier: classifier,
	}
}

// ListZones returns the zone catalog in classification order.
func (h *ZoneHandler) ListZones(c *gin.Context) {
	utils.SuccessResponse(c, "Zones", h.classifier.Zones())
}

// Classify resolves a lat/lng query pair to a zone name without touching
// any incident. Useful for previewing classification in the reporting UI.
func (h *ZoneHandler) Classify(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid or missing lat")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid or missing lng")
		return
	}

	zone := h.classifier.Classify(lat, lng)
	utils.SuccessResponse(c, "Classification", gin.H{
		"coordinate": models.Coordinate{Lat: lat, Lng: lng},
		"zone_name":  zone,
	})
}

package controllers

import (
	"net/http"

	"github.com/azamatleskhan01/fastdelivery/services"

	"github.com/gin-gonic/gin"
)

type DroneController struct{ Svc *services.DroneService }

func NewDroneController(s *services.DroneService) *DroneController {
	return &DroneController{Svc: s}
}

// Coordinates are pointers so 0 still binds; required alone would reject
// the zero value.
type ETARequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lon *float64 `json:"lon" binding:"required"`
}

// GET /get_positions — bare array, shape fixed by the tracking page
func (h *DroneController) GetPositions(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Positions())
}

// POST /calculate_eta
func (h *DroneController) CalculateETA(c *gin.Context) {
	var req ETARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "error calculating ETA"})
		return
	}

	eta, err := h.Svc.ETA(*req.Lat, *req.Lon)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "error calculating ETA"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"eta": eta})
}

package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Get a list of hydrants
// @Description Get a paginated list of city hydrants for the map layer. Requires API key.
// @Tags Hydrants
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} HydrantResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hydrants [get]
func (h *Handler) listHydrants(c *gin.Context) {
	log := h.logger.WithField("method", "listHydrants")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	hydrants, err := h.hydrantService.ListHydrants(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list hydrants from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToHydrantResponses(hydrants))
}

// @Summary Find hydrants near a point
// @Description Find operational hydrants within a radius of the given coordinates, nearest first. Requires API key.
// @Tags Hydrants
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query int false "Search radius in meters" default(500)
// @Success 200 {array} HydrantResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hydrants/nearby [get]
func (h *Handler) findNearbyHydrants(c *gin.Context) {
	log := h.logger.WithField("method", "findNearbyHydrants")

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}
	radius, _ := strconv.Atoi(c.DefaultQuery("radius", "500"))

	hydrants, err := h.hydrantService.FindNearby(c.Request.Context(), lat, lng, radius)
	if err != nil {
		log.WithError(err).Error("Failed to find hydrants in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToHydrantResponses(hydrants))
}

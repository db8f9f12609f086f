package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Публичные маршруты маяка пострадавшего. Без аутентификации: ссылка /loc/:id
// попадает к пострадавшему по SMS, никакой учетной записи у него нет.

// @Summary Get public state of a location request
// @Description Public, unauthenticated endpoint used by the victim beacon page to confirm the link is live. Phone number is not exposed.
// @Tags Beacon
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} PublicGeoRequestResponse
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 404 {object} map[string]string "Request not found"
// @Router /loc/{id} [get]
func (h *Handler) getPublicRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "getPublicRequest").WithField("id", id)

	request, err := h.geoService.GetRequest(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get location request from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}

	c.JSON(http.StatusOK, ModelToPublicGeoRequestResponse(request))
}

// @Summary Report victim coordinates
// @Description Public, unauthenticated write path of the location handshake. Transitions the request pending -> located exactly once; a repeated or late write gets 409.
// @Tags Beacon
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param report body ReportLocationRequest true "Device coordinates"
// @Success 200 {object} PublicGeoRequestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Request already located"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /loc/{id} [post]
func (h *Handler) reportLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "reportLocation").WithField("id", id)

	var input ReportLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var accuracy float64
	if input.Accuracy != nil {
		accuracy = *input.Accuracy
	}

	request, err := h.geoService.ReportLocation(c.Request.Context(), id, *input.Latitude, *input.Longitude, accuracy)
	if err != nil {
		if respondServiceError(c, err) {
			return
		}
		log.WithError(err).Error("Failed to report location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToPublicGeoRequestResponse(request))
}

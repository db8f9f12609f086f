package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Stream realtime updates for a location request
// @Description Server-Sent Events stream of update events for one request. Emits a "located" event with the new row state when the victim's coordinates arrive. Requires API key.
// @Tags Requests
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Param id path string true "Request ID"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Router /requests/{id}/events [get]
func (h *Handler) streamRequestEvents(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "streamRequestEvents").WithField("id", id)

	// Проверяем, что запрос существует, до установки стрима
	request, err := h.geoService.GetRequest(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get location request from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}

	events, teardown, err := h.subscriber.Subscribe(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to request events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer teardown()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// Текущее состояние первым событием: если запрос уже located,
	// консоль не должна ждать обновления, которого не будет
	c.SSEvent("state", ModelToGeoRequestResponse(request))
	c.Writer.Flush()

	log.Info("Dispatcher console subscribed to request events")

	// Отключение клиента отслеживаем через контекст запроса,
	// а не через CloseNotify
	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			log.Info("Dispatcher console unsubscribed from request events")
			return
		case event, ok := <-events:
			if !ok {
				log.Info("Dispatcher console unsubscribed from request events")
				return
			}
			c.SSEvent("located", event)
			c.Writer.Flush()
		}
	}
}

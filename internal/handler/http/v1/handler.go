package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/citysafe/emergency_location_system/internal/config"
	"github.com/citysafe/emergency_location_system/internal/dispatch"
	"github.com/citysafe/emergency_location_system/internal/realtime"
	"github.com/citysafe/emergency_location_system/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EventSubscriber - подписка на realtime-события одного запроса геолокации
type EventSubscriber interface {
	Subscribe(ctx context.Context, requestID uuid.UUID) (<-chan realtime.Event, func(), error)
}

type Handler struct {
	geoService      service.GeoRequestService
	propertyService service.PropertyService
	hydrantService  service.HydrantService
	subscriber      EventSubscriber
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	geoService service.GeoRequestService,
	propertyService service.PropertyService,
	hydrantService service.HydrantService,
	subscriber EventSubscriber,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		geoService:      geoService,
		propertyService: propertyService,
		hydrantService:  hydrantService,
		subscriber:      subscriber,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Create a location request
// @Description Create a pending location request and get the victim link plus SMS compose materials. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateGeoRequestRequest true "Location request creation"
// @Success 201 {object} CreateGeoRequestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests [post]
func (h *Handler) createRequest(c *gin.Context) {
	var input CreateGeoRequestRequest
	log := h.logger.WithField("method", "createRequest")

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

	request, link, err := h.geoService.CreateAndDispatch(c.Request.Context(), input.PhoneNumber)
	if err != nil {
		log.WithError(err).Error("Failed to create location request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, CreateGeoRequestResponse{
		Request:       ModelToGeoRequestResponse(request),
		VictimURL:     link.VictimURL,
		SMSBody:       link.SMSBody,
		SMSComposeURI: link.SMSComposeURI,
	})
}

// @Summary List recent location requests
// @Description Get the most recent location requests, newest first. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Max rows to return" default(20)
// @Success 200 {array} GeoRequestResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests [get]
func (h *Handler) listRequests(c *gin.Context) {
	log := h.logger.WithField("method", "listRequests")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	requests, err := h.geoService.ListHistory(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to list location requests from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToGeoRequestResponses(requests))
}

// @Summary Get location request by ID
// @Description Get a single location request by its ID. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Request ID"
// @Success 200 {object} GeoRequestResponse
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Router /requests/{id} [get]
func (h *Handler) getRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "getRequest").WithField("id", id)

	request, err := h.geoService.GetRequest(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get location request from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToGeoRequestResponse(request))
}

// @Summary Get location request statistics
// @Description Get request counts for the configured time window. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} GeoRequestStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/stats [get]
func (h *Handler) getRequestStats(c *gin.Context) {
	log := h.logger.WithField("method", "getRequestStats")

	stats, err := h.geoService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, GeoRequestStatsResponse{
		Total:   stats.Total,
		Pending: stats.Pending,
		Located: stats.Located,
	})
}

// @Summary Decode coordinates from pasted SMS text
// @Description Extract a coordinate pair from free-form SMS text, e.g. "SOS -4.22,15.29 ...". Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DecodeTextRequest true "Pasted SMS text"
// @Success 200 {object} DecodeTextResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "No valid coordinate pair in text"
// @Router /requests/decode [post]
func (h *Handler) decodeCoordinates(c *gin.Context) {
	var input DecodeTextRequest
	log := h.logger.WithField("method", "decodeCoordinates")

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

	lat, lng, err := dispatch.DecodeCoordinates(input.Text)
	if err != nil {
		log.WithError(err).Warn("Failed to decode coordinates from text")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid coordinates"})
		return
	}

	c.JSON(http.StatusOK, DecodeTextResponse{Latitude: lat, Longitude: lng})
}

// @Summary Get map launch links for a located request
// @Description Get web maps URL, native geo: URI and the combined launch plan for a located request. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Request ID"
// @Success 200 {object} MapLinksResponse
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Request not located yet"
// @Router /requests/{id}/maplinks [get]
func (h *Handler) getMapLinks(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "getMapLinks").WithField("id", id)

	request, err := h.geoService.GetRequest(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get location request from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}

	if request.Latitude == nil || request.Longitude == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "request not located yet"})
		return
	}

	lat, lng := *request.Latitude, *request.Longitude
	label := "Emergency " + request.ID.String()

	plan := dispatch.LaunchBoth(lat, lng, label)
	launch := make([]MapActionResponse, len(plan))
	for i, action := range plan {
		launch[i] = MapActionResponse{URI: action.URI, DelayMS: action.Delay.Milliseconds()}
	}

	c.JSON(http.StatusOK, MapLinksResponse{
		WebURL:     dispatch.WebMapsURL(lat, lng),
		GeoURI:     dispatch.GeoURI(lat, lng, label),
		LaunchBoth: launch,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondServiceError отображает сентинельные ошибки домена в коды HTTP
func respondServiceError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
	case errors.Is(err, service.ErrAlreadyLocated):
		c.JSON(http.StatusConflict, gin.H{"error": "request already located"})
	case errors.Is(err, service.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
	default:
		return false
	}
	return true
}

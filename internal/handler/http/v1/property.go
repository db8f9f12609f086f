package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Register a property
// @Description Register a new property in the fire-safety registry. Requires API key.
// @Tags Properties
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param property body CreatePropertyRequest true "Property registration request"
// @Success 201 {object} PropertyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /properties [post]
func (h *Handler) createProperty(c *gin.Context) {
	var input CreatePropertyRequest
	log := h.logger.WithField("method", "createProperty")

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

	model := DTOToPropertyModel(input)
	if err := h.propertyService.CreateProperty(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create property in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToPropertyResponse(model))
}

// @Summary Get a list of properties
// @Description Get a paginated list of registered properties. Requires API key.
// @Tags Properties
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} PropertyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /properties [get]
func (h *Handler) listProperties(c *gin.Context) {
	log := h.logger.WithField("method", "listProperties")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	properties, err := h.propertyService.ListProperties(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list properties from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToPropertyResponses(properties))
}

// @Summary Get property by ID
// @Description Get a single property by its ID. Requires API key.
// @Tags Properties
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Property ID"
// @Success 200 {object} PropertyResponse
// @Failure 400 {object} map[string]string "Invalid property ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Property not found"
// @Router /properties/{id} [get]
func (h *Handler) getProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return
	}
	log := h.logger.WithField("method", "getProperty").WithField("id", id)

	property, err := h.propertyService.GetProperty(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get property from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToPropertyResponse(property))
}

// @Summary Update an existing property
// @Description Update an existing property by ID. Requires API key.
// @Tags Properties
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Property ID"
// @Param property body UpdatePropertyRequest true "Property update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid property ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /properties/{id} [put]
func (h *Handler) updateProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return
	}
	log := h.logger.WithField("method", "updateProperty").WithField("id", id)

	var input UpdatePropertyRequest
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

	model := DTOToPropertyModel(input)
	model.ID = id

	if err := h.propertyService.UpdateProperty(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update property in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update property in service"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Archive a property
// @Description Archive a property by its ID. This marks the property as archived. Requires API key.
// @Tags Properties
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid property ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /properties/{id} [delete]
func (h *Handler) archiveProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return
	}
	log := h.logger.WithField("method", "archiveProperty").WithField("id", id)

	if err := h.propertyService.ArchiveProperty(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to archive property in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to archive property"})
		return
	}

	c.Status(http.StatusNoContent)
}

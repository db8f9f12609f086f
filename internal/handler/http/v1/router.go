package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует маршруты API v1 (консоль диспетчера и админка)
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Запросы экстренной геолокации
	requests := api.Group("/requests")
	{
		requests.POST("", h.createRequest)
		requests.GET("", h.listRequests)
		requests.GET("/stats", h.getRequestStats)
		requests.POST("/decode", h.decodeCoordinates)
		requests.GET("/:id", h.getRequest)
		requests.GET("/:id/events", h.streamRequestEvents)
		requests.GET("/:id/maplinks", h.getMapLinks)
	}

	// Реестр объектов недвижимости
	properties := api.Group("/properties")
	{
		properties.POST("", h.createProperty)
		properties.GET("", h.listProperties)
		properties.GET("/:id", h.getProperty)
		properties.PUT("/:id", h.updateProperty)
		properties.DELETE("/:id", h.archiveProperty)
	}

	// Карта гидрантов
	hydrants := api.Group("/hydrants")
	{
		hydrants.GET("", h.listHydrants)
		hydrants.GET("/nearby", h.findNearbyHydrants)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

// RegisterPublicRoutes регистрирует публичные маршруты маяка пострадавшего
func (h *Handler) RegisterPublicRoutes(r gin.IRouter) {
	r.GET("/loc/:id", h.getPublicRequest)
	r.POST("/loc/:id", h.reportLocation)
}

package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Все маршруты, кроме аутентификации и health-check, требуют Bearer-токен.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты аутентификации
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	// Защищенные маршруты
	protected := api.Group("")
	protected.Use(JWTAuthMiddleware(h.authService, h.logger))
	{
		protected.GET("/auth/me", h.me)
		protected.GET("/users", h.listUsers)

		locations := protected.Group("/locations")
		{
			locations.POST("", h.createLocation)
			locations.GET("", h.listLocations)
			locations.GET("/stats", h.getStats)
			locations.GET("/:id", h.getLocation)
			locations.PATCH("/:id", h.updateLocation)
			locations.GET("/:id/updates", h.listUpdates)
			locations.POST("/:id/updates", h.addNote)
		}
	}
}

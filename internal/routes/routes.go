package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photostudio_backend/internal/handlers"
	"photostudio_backend/internal/storage"
)

// RegisterRoutes mounts the health check, the API group and the static
// uploads directory when files are stored locally.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, store storage.Storage) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Server is running",
		})
	})

	api := ginRouter.Group("/api")
	appHandlers.RegisterAll(api)

	if local, ok := store.(*storage.LocalStorage); ok {
		ginRouter.Static("/uploads", local.BasePath())
	}

	ginRouter.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})
}

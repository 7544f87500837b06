package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
)

// RegisterRoutes регистрирует все HTTP-маршруты приложения.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	// Liveness-проба, без аутентификации
	ginRouter.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger UI
	ginRouter.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := ginRouter.Group("")
	{
		appHandlers.User.RegisterRoutes(api)
		appHandlers.Company.RegisterRoutes(api)
		appHandlers.Job.RegisterRoutes(api)
		appHandlers.Application.RegisterRoutes(api)
		appHandlers.Profile.RegisterRoutes(api)
	}

	ginRouter.NoRoute(middleware.NoRoute())

	logger.Info("HTTP routes registered")
}

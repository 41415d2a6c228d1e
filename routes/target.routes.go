package routes

import (
	"nutrilog/internal/controllers"
	"nutrilog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterTargetRoutes(router *gin.Engine, targetController *controllers.TargetController) {
	targetRoutes := router.Group("/targets")
	targetRoutes.Use(middleware.AuthMiddleware())
	{
		targetRoutes.POST("/", targetController.CreateTarget)
		targetRoutes.GET("/", targetController.ListTargets)
		targetRoutes.GET("/active", targetController.GetActiveTarget)
		targetRoutes.POST("/:id/activate", targetController.ActivateTarget)
	}
}

package routes

import (
	"nutrilog/internal/controllers"
	"nutrilog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecommendationRoutes(router *gin.Engine, recommendationController *controllers.RecommendationController) {
	recommendationRoutes := router.Group("/recommendations")
	recommendationRoutes.Use(middleware.AuthMiddleware())
	{
		recommendationRoutes.POST("/", recommendationController.GenerateRecommendation)
		recommendationRoutes.GET("/", recommendationController.ListRecommendations)
	}
}

package routes

import (
	"nutrilog/internal/controllers"
	"nutrilog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterNutritionRoutes(router *gin.Engine, nutritionController *controllers.NutritionController) {
	nutritionRoutes := router.Group("/nutrition")
	nutritionRoutes.Use(middleware.AuthMiddleware())
	{
		nutritionRoutes.POST("/meals/compute", nutritionController.ComputeMeal)
		nutritionRoutes.POST("/daily/compute", nutritionController.ComputeDaily)
		nutritionRoutes.GET("/daily-log/status", nutritionController.GetDailyLogStatus)
	}
}

package routes

import (
	"nutrilog/internal/controllers"
	"nutrilog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFoodEntryRoutes(router *gin.Engine, foodEntryController *controllers.FoodEntryController) {
	foodRoutes := router.Group("/food-entries")
	foodRoutes.Use(middleware.AuthMiddleware())
	{
		foodRoutes.POST("/", foodEntryController.CreateFoodEntry)
		foodRoutes.GET("/", foodEntryController.ListFoodEntries)
		foodRoutes.PUT("/:id", foodEntryController.UpdateFoodEntry)
		foodRoutes.DELETE("/:id", foodEntryController.DeleteFoodEntry)
	}
}

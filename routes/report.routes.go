package routes

import (
	"nutrilog/internal/controllers"
	"nutrilog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterReportRoutes(router *gin.Engine, reportController *controllers.ReportController) {
	reportRoutes := router.Group("/reports")
	reportRoutes.Use(middleware.AuthMiddleware())
	{
		reportRoutes.POST("/", reportController.GenerateReport)
		reportRoutes.GET("/", reportController.GetReport)
	}
}

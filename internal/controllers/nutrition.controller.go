package controllers

import (
	"net/http"

	"nutrilog/internal/models"
	"nutrilog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	meals    *usecase.MealNutritionService
	daily    *usecase.DailyNutritionService
	dailyLog *usecase.DailyLogService
}

func NewNutritionController(meals *usecase.MealNutritionService, daily *usecase.DailyNutritionService, dailyLog *usecase.DailyLogService) *NutritionController {
	return &NutritionController{meals: meals, daily: daily, dailyLog: dailyLog}
}

type computeDailyRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

// ComputeMeal godoc
// @Summary Compute a per-meal nutrition summary
// @Description Estimate nutrients for one meal slot's food entries and refresh the daily aggregate
// @Tags nutrition
// @Accept json
// @Produce json
// @Param request body models.ComputeMealNutritionRequest true "Meal slot"
// @Success 200 {object} map[string]interface{} "Meal nutrition computed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Premium feature required"
// @Router /nutrition/meals/compute [post]
func (nc *NutritionController) ComputeMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.ComputeMealNutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "date must be in YYYY-MM-DD format",
		})
		return
	}

	mealSummary, err := nc.meals.Compute(c.Request.Context(), userID, date, req.MealType, req.MealIndex)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	// The daily row is derived from the per-meal rows, so a changed meal
	// refreshes it immediately.
	dailySummary, err := nc.daily.Compute(c.Request.Context(), userID, date)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal nutrition computed successfully",
		"data": gin.H{
			"meal_summary":  mealSummary,
			"daily_summary": dailySummary,
		},
	})
}

// ComputeDaily godoc
// @Summary Recompute the per-day nutrition aggregate
// @Tags nutrition
// @Accept json
// @Produce json
// @Param request body computeDailyRequest true "Date"
// @Success 200 {object} map[string]interface{} "Daily nutrition computed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Premium feature required"
// @Router /nutrition/daily/compute [post]
func (nc *NutritionController) ComputeDaily(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req computeDailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "date must be in YYYY-MM-DD format",
		})
		return
	}

	summary, err := nc.daily.Compute(c.Request.Context(), userID, date)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Daily nutrition computed successfully",
		"data":    summary,
	})
}

// GetDailyLogStatus godoc
// @Summary Check whether a day's food log is complete
// @Tags nutrition
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Daily log status retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /nutrition/daily-log/status [get]
func (nc *NutritionController) GetDailyLogStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date, err := models.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "date must be in YYYY-MM-DD format",
		})
		return
	}

	status, err := nc.dailyLog.Status(c.Request.Context(), userID, date)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Daily log status retrieved successfully",
		"data":    status,
	})
}

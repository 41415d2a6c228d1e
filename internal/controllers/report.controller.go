package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"nutrilog/internal/cache"
	"nutrilog/internal/models"
	"nutrilog/internal/usecase"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportController struct {
	reports *usecase.DailyReportService
	cache   *cache.RedisClient
}

// NewReportController accepts a nil cache; the read path then always
// goes to the database.
func NewReportController(reports *usecase.DailyReportService, cache *cache.RedisClient) *ReportController {
	return &ReportController{reports: reports, cache: cache}
}

type generateReportRequest struct {
	Date string `json:"date" binding:"required"`
}

// GenerateReport godoc
// @Summary Generate the daily nutrition report
// @Description Build the once-per-day narrative review from the day's summaries
// @Tags reports
// @Accept json
// @Produce json
// @Param request body generateReportRequest true "Date"
// @Success 201 {object} map[string]interface{} "Report generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Premium feature required"
// @Failure 409 {object} map[string]interface{} "Report already exists or log incomplete"
// @Router /reports [post]
func (rc *ReportController) GenerateReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req generateReportRequest
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

	report, err := rc.reports.Generate(c.Request.Context(), userID, date)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if rc.cache != nil {
		if err := rc.cache.StoreDailyReport(c.Request.Context(), report, 24*time.Hour); err != nil {
			log.Printf("Failed to cache report for user %s: %v", userID, err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Report generated successfully",
		"data":    report,
	})
}

// GetReport godoc
// @Summary Get the daily report for a date
// @Tags reports
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Report retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Router /reports [get]
func (rc *ReportController) GetReport(c *gin.Context) {
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

	if rc.cache != nil {
		if cached, found, err := rc.cache.GetDailyReport(c.Request.Context(), userID, date); err != nil {
			log.Printf("Redis read failed for user %s: %v", userID, err)
		} else if found {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Report retrieved successfully",
				"data":    cached,
			})
			return
		}
	}

	report, err := rc.reports.Get(c.Request.Context(), userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Report not found",
				"error":   "No report exists for the requested date",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve report",
			"error":   err.Error(),
		})
		return
	}

	if rc.cache != nil {
		if err := rc.cache.StoreDailyReport(c.Request.Context(), report, 24*time.Hour); err != nil {
			log.Printf("Failed to cache report for user %s: %v", userID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Report retrieved successfully",
		"data":    report,
	})
}

package controllers

import (
	"net/http"
	"strconv"
	"time"

	"nutrilog/internal/models"
	"nutrilog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	recommendations *usecase.RecommendationService
}

func NewRecommendationController(recommendations *usecase.RecommendationService) *RecommendationController {
	return &RecommendationController{recommendations: recommendations}
}

// GenerateRecommendation godoc
// @Summary Generate meal recommendations
// @Description Produce three meal ideas from the user's recent daily reports
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body models.GenerateRecommendationRequest false "Base date (defaults to today)"
// @Success 201 {object} map[string]interface{} "Recommendation generated successfully"
// @Failure 403 {object} map[string]interface{} "Premium feature required"
// @Failure 429 {object} map[string]interface{} "Rate limit reached"
// @Router /recommendations [post]
func (rc *RecommendationController) GenerateRecommendation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.GenerateRecommendationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   err.Error(),
			})
			return
		}
	}

	baseDate := time.Now().UTC()
	if req.BaseDate != "" {
		parsed, err := models.ParseDate(req.BaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "base_date must be in YYYY-MM-DD format",
			})
			return
		}
		baseDate = parsed
	}

	rec, err := rc.recommendations.Generate(c.Request.Context(), userID, baseDate)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recommendation generated successfully",
		"data":    rec,
	})
}

// ListRecommendations godoc
// @Summary List stored meal recommendations
// @Tags recommendations
// @Produce json
// @Param limit query int false "Maximum number of results (default 20)"
// @Success 200 {object} map[string]interface{} "Recommendations retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /recommendations [get]
func (rc *RecommendationController) ListRecommendations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	recs, err := rc.recommendations.List(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve recommendations",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recommendations retrieved successfully",
		"data":    recs,
	})
}

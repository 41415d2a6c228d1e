package controllers

import (
	"net/http"

	"nutrilog/internal/models"
	"nutrilog/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TargetController struct {
	repo repository.TargetRepository
}

func NewTargetController(repo repository.TargetRepository) *TargetController {
	return &TargetController{repo: repo}
}

// CreateTarget godoc
// @Summary Create a nutrition target
// @Description Store a target definition covering all nutrient codes
// @Tags targets
// @Accept json
// @Produce json
// @Param target body models.CreateTargetRequest true "Target data"
// @Success 201 {object} map[string]interface{} "Target created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Target limit reached"
// @Router /targets [post]
func (tc *TargetController) CreateTarget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// A target must carry exactly one amount per nutrient code.
	if len(req.Nutrients) != len(models.AllNutrientCodes) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "a target must define every nutrient code exactly once",
		})
		return
	}
	seen := make(map[models.NutrientCode]bool)
	nutrients := make([]models.TargetNutrient, 0, len(req.Nutrients))
	for _, n := range req.Nutrients {
		code, err := models.ParseNutrientCode(n.Code)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   err.Error(),
			})
			return
		}
		if seen[code] {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "duplicate nutrient code: " + n.Code,
			})
			return
		}
		seen[code] = true
		nutrients = append(nutrients, models.TargetNutrient{
			Code:   code,
			Value:  n.Value,
			Unit:   n.Unit,
			Source: models.NutrientSource(n.Source),
		})
	}

	count, err := tc.repo.CountByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create target",
			"error":   err.Error(),
		})
		return
	}
	if count >= models.MaxTargetsPerUser {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Target limit reached",
			"error":   "A user may store at most 5 target definitions",
		})
		return
	}

	target := &models.TargetDefinition{
		UserID:        userID,
		Title:         req.Title,
		GoalType:      req.GoalType,
		ActivityLevel: req.ActivityLevel,
		Rationale:     req.Rationale,
		Disclaimer:    req.Disclaimer,
		Nutrients:     nutrients,
	}
	if err := tc.repo.Create(c.Request.Context(), target); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create target",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Target created successfully",
		"data":    target,
	})
}

// ListTargets godoc
// @Summary List the authenticated user's targets
// @Tags targets
// @Produce json
// @Success 200 {object} map[string]interface{} "Targets retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /targets [get]
func (tc *TargetController) ListTargets(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	targets, err := tc.repo.FindAllByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve targets",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Targets retrieved successfully",
		"data":    targets,
	})
}

// ActivateTarget godoc
// @Summary Activate a target
// @Description Make the target active and deactivate every other target of the user
// @Tags targets
// @Produce json
// @Param id path string true "Target ID"
// @Success 200 {object} map[string]interface{} "Target activated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid target ID"
// @Failure 404 {object} map[string]interface{} "Target not found"
// @Router /targets/{id}/activate [post]
func (tc *TargetController) ActivateTarget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid target ID",
			"error":   "ID must be a valid UUID",
		})
		return
	}

	if err := tc.repo.Activate(c.Request.Context(), id, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Target not found",
			"error":   "No target exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Target activated successfully",
		"data":    nil,
	})
}

// GetActiveTarget godoc
// @Summary Get the active target
// @Tags targets
// @Produce json
// @Success 200 {object} map[string]interface{} "Active target retrieved successfully"
// @Failure 404 {object} map[string]interface{} "No active target"
// @Router /targets/active [get]
func (tc *TargetController) GetActiveTarget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	target, err := tc.repo.FindActiveByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No active target",
			"error":   "The user has no active target definition",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Active target retrieved successfully",
		"data":    target,
	})
}

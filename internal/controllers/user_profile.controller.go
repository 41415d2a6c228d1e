package controllers

import (
	"net/http"

	"nutrilog/internal/models"
	"nutrilog/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserProfileController struct {
	repo repository.UserProfileRepository
}

func NewUserProfileController(repo repository.UserProfileRepository) *UserProfileController {
	return &UserProfileController{repo: repo}
}

// GetUserProfile godoc
// @Summary Get the authenticated user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{} "User profile retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [get]
func (pc *UserProfileController) GetUserProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := pc.repo.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User profile retrieved successfully",
		"data":    profile,
	})
}

// UpsertUserProfile godoc
// @Summary Create or update the authenticated user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body models.UpsertProfileRequest true "Profile data"
// @Success 200 {object} map[string]interface{} "User profile saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /profile [put]
func (pc *UserProfileController) UpsertUserProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	profile := &models.UserProfile{
		UserID:      userID,
		Sex:         req.Sex,
		HeightCm:    req.HeightCm,
		WeightKg:    req.WeightKg,
		MealsPerDay: req.MealsPerDay,
	}
	if req.Birthdate != "" {
		birthdate, err := models.ParseDate(req.Birthdate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "birthdate must use the YYYY-MM-DD format",
			})
			return
		}
		profile.Birthdate = &birthdate
	}

	if err := pc.repo.Upsert(c.Request.Context(), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User profile saved successfully",
		"data":    profile,
	})
}

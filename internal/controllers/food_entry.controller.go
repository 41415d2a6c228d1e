package controllers

import (
	"net/http"

	"nutrilog/internal/models"
	"nutrilog/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FoodEntryController struct {
	repo repository.FoodEntryRepository
}

func NewFoodEntryController(repo repository.FoodEntryRepository) *FoodEntryController {
	return &FoodEntryController{repo: repo}
}

func foodEntryFromRequest(req *models.FoodEntryRequest) (*models.FoodEntry, error) {
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	entry := &models.FoodEntry{
		Date:         date,
		MealType:     req.MealType,
		MealIndex:    req.MealIndex,
		Name:         req.Name,
		AmountValue:  req.AmountValue,
		AmountUnit:   req.AmountUnit,
		ServingCount: req.ServingCount,
		Note:         req.Note,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// CreateFoodEntry godoc
// @Summary Log a food item
// @Description Record one food item for a date and meal slot
// @Tags food
// @Accept json
// @Produce json
// @Param entry body models.FoodEntryRequest true "Food entry data"
// @Success 201 {object} map[string]interface{} "Food entry created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /food [post]
func (fc *FoodEntryController) CreateFoodEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.FoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	entry, err := foodEntryFromRequest(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	entry.UserID = userID

	if err := fc.repo.Create(c.Request.Context(), entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create food entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food entry created successfully",
		"data":    entry,
	})
}

// ListFoodEntries godoc
// @Summary List food entries for a date
// @Tags food
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Food entries retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /food [get]
func (fc *FoodEntryController) ListFoodEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date, err := models.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "date must use the YYYY-MM-DD format",
		})
		return
	}

	entries, err := fc.repo.FindByUserAndDate(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve food entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entries retrieved successfully",
		"data":    entries,
	})
}

// UpdateFoodEntry godoc
// @Summary Update a food entry
// @Tags food
// @Accept json
// @Produce json
// @Param id path string true "Food entry ID"
// @Param entry body models.FoodEntryRequest true "Food entry data"
// @Success 200 {object} map[string]interface{} "Food entry updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Food entry not found"
// @Router /food/{id} [put]
func (fc *FoodEntryController) UpdateFoodEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food entry ID",
			"error":   "ID must be a valid UUID",
		})
		return
	}

	var req models.FoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	existing, err := fc.repo.FindByID(c.Request.Context(), id, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food entry not found",
			"error":   "No food entry exists with the provided ID",
		})
		return
	}

	updated, err := foodEntryFromRequest(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	updated.ID = existing.ID
	updated.UserID = userID
	updated.CreatedAt = existing.CreatedAt

	if err := fc.repo.Update(c.Request.Context(), updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update food entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entry updated successfully",
		"data":    updated,
	})
}

// DeleteFoodEntry godoc
// @Summary Delete a food entry
// @Description Soft-delete a food entry so it no longer counts toward the daily log
// @Tags food
// @Produce json
// @Param id path string true "Food entry ID"
// @Success 200 {object} map[string]interface{} "Food entry deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food entry ID"
// @Failure 404 {object} map[string]interface{} "Food entry not found"
// @Router /food/{id} [delete]
func (fc *FoodEntryController) DeleteFoodEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food entry ID",
			"error":   "ID must be a valid UUID",
		})
		return
	}

	if _, err := fc.repo.FindByID(c.Request.Context(), id, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food entry not found",
			"error":   "No food entry exists with the provided ID",
		})
		return
	}

	if err := fc.repo.Delete(c.Request.Context(), id, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete food entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entry deleted successfully",
		"data":    nil,
	})
}

package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutrilog/internal/mocks"
	"nutrilog/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	return router
}

func fullNutrientList() []map[string]interface{} {
	nutrients := make([]map[string]interface{}, 0, len(models.AllNutrientCodes))
	for _, code := range models.AllNutrientCodes {
		nutrients = append(nutrients, map[string]interface{}{
			"code":   string(code),
			"value":  50.0,
			"unit":   models.CanonicalNutrientUnits[code],
			"source": "manual",
		})
	}
	return nutrients
}

func createTargetBody(nutrients []map[string]interface{}) *bytes.Buffer {
	body, _ := json.Marshal(map[string]interface{}{
		"title":          "Maintenance",
		"goal_type":      "maintain",
		"activity_level": "moderate",
		"nutrients":      nutrients,
	})
	return bytes.NewBuffer(body)
}

func TestCreateTarget_Success(t *testing.T) {
	userID := uuid.New()
	repo := new(mocks.MockTargetRepository)
	repo.On("CountByUserID", mock.Anything, userID).Return(int64(0), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.TargetDefinition")).Return(nil)

	router := setupRouter(userID)
	router.POST("/targets", NewTargetController(repo).CreateTarget)

	req := httptest.NewRequest("POST", "/targets", createTargetBody(fullNutrientList()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	repo.AssertExpectations(t)

	created := repo.Calls[1].Arguments.Get(1).(*models.TargetDefinition)
	assert.Equal(t, userID, created.UserID)
	assert.Len(t, created.Nutrients, len(models.AllNutrientCodes))
}

func TestCreateTarget_RejectsPartialNutrientList(t *testing.T) {
	userID := uuid.New()
	repo := new(mocks.MockTargetRepository)

	router := setupRouter(userID)
	router.POST("/targets", NewTargetController(repo).CreateTarget)

	req := httptest.NewRequest("POST", "/targets", createTargetBody(fullNutrientList()[:5]))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTarget_RejectsDuplicateCodes(t *testing.T) {
	userID := uuid.New()
	repo := new(mocks.MockTargetRepository)

	router := setupRouter(userID)
	router.POST("/targets", NewTargetController(repo).CreateTarget)

	nutrients := fullNutrientList()
	nutrients[1]["code"] = nutrients[0]["code"]

	req := httptest.NewRequest("POST", "/targets", createTargetBody(nutrients))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTarget_EnforcesStoredTargetCap(t *testing.T) {
	userID := uuid.New()
	repo := new(mocks.MockTargetRepository)
	repo.On("CountByUserID", mock.Anything, userID).Return(int64(models.MaxTargetsPerUser), nil)

	router := setupRouter(userID)
	router.POST("/targets", NewTargetController(repo).CreateTarget)

	req := httptest.NewRequest("POST", "/targets", createTargetBody(fullNutrientList()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestActivateTarget_NotFound(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()
	repo := new(mocks.MockTargetRepository)
	repo.On("Activate", mock.Anything, targetID, userID).Return(gorm.ErrRecordNotFound)

	router := setupRouter(userID)
	router.POST("/targets/:id/activate", NewTargetController(repo).ActivateTarget)

	req := httptest.NewRequest("POST", fmt.Sprintf("/targets/%s/activate", targetID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetActiveTarget_Found(t *testing.T) {
	userID := uuid.New()
	repo := new(mocks.MockTargetRepository)
	repo.On("FindActiveByUserID", mock.Anything, userID).Return(&models.TargetDefinition{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    "Cut",
		IsActive: true,
	}, nil)

	router := setupRouter(userID)
	router.GET("/targets/active", NewTargetController(repo).GetActiveTarget)

	req := httptest.NewRequest("GET", "/targets/active", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
}

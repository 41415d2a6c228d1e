package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nutrilog/internal/mocks"
	"nutrilog/internal/models"
	. "nutrilog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func paidUser(userID uuid.UUID) *models.User {
	return &models.User{ID: userID, Plan: models.PlanPaid}
}

func TestMealNutritionService_RejectsInvalidSlots(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	service := NewMealNutritionService(nil, nil, nil, nil)

	_, err := service.Compute(context.Background(), userID, date, "brunch", nil)
	var badType *InvalidMealTypeError
	assert.ErrorAs(t, err, &badType)

	_, err = service.Compute(context.Background(), userID, date, models.MealTypeMain, nil)
	var badIndex *InvalidMealIndexError
	assert.ErrorAs(t, err, &badIndex)

	_, err = service.Compute(context.Background(), userID, date, models.MealTypeMain, intPtr(0))
	assert.ErrorAs(t, err, &badIndex)

	_, err = service.Compute(context.Background(), userID, date, models.MealTypeSnack, intPtr(1))
	assert.ErrorAs(t, err, &badIndex)
}

func TestMealNutritionService_ComputeUpsertsSummary(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := date.Add(13 * time.Hour)
	repos := mocks.NewMockRepos()
	clock := &mocks.FixedClock{Instant: now}

	entries := []models.FoodEntry{mainEntry(userID, date, 1)}
	estimated := []EstimatedNutrient{
		{Code: models.NutrientProtein, Value: 32, Unit: "g", Source: models.NutrientSourceLLM},
		{Code: models.NutrientCarbohydrate, Value: 55, Unit: "g", Source: models.NutrientSourceLLM},
	}

	repos.Users.On("FindByID", mock.Anything, userID).Return(paidUser(userID), nil)
	repos.FoodEntries.On("FindByUserDateTypeIndex", mock.Anything, userID, date, models.MealTypeMain, intPtr(1)).Return(entries, nil)
	repos.MealSummaries.On("FindByKey", mock.Anything, userID, date, models.MealTypeMain, intPtr(1)).Return(nil, gorm.ErrRecordNotFound)
	repos.MealSummaries.On("Upsert", mock.Anything, mock.AnythingOfType("*models.MealNutritionSummary")).Return(nil)

	estimator := new(mocks.MockNutrientEstimator)
	estimator.On("Estimate", mock.Anything, userID, date, entries).Return(estimated, nil)

	service := NewMealNutritionService(mocks.NewFakeUnitOfWork(repos.Repos()), NewPlanGate(clock), estimator, clock)
	summary, err := service.Compute(context.Background(), userID, date, models.MealTypeMain, intPtr(1))

	assert.NoError(t, err)
	assert.Equal(t, userID, summary.UserID)
	assert.Equal(t, models.MealTypeMain, summary.MealType)
	assert.Equal(t, now, summary.GeneratedAt)
	assert.Len(t, summary.Nutrients, 2)
	assert.Equal(t, models.NutrientProtein, summary.Nutrients[0].Code)
	assert.Equal(t, 32.0, summary.Nutrients[0].Value)
	repos.MealSummaries.AssertExpectations(t)
}

func TestMealNutritionService_RecomputeKeepsRowID(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repos := mocks.NewMockRepos()
	clock := &mocks.FixedClock{Instant: date}

	existingID := uuid.New()
	existing := &models.MealNutritionSummary{
		ID:       existingID,
		UserID:   userID,
		Date:     date,
		MealType: models.MealTypeSnack,
	}

	repos.Users.On("FindByID", mock.Anything, userID).Return(paidUser(userID), nil)
	repos.FoodEntries.On("FindByUserDateTypeIndex", mock.Anything, userID, date, models.MealTypeSnack, (*int)(nil)).Return([]models.FoodEntry{}, nil)
	repos.MealSummaries.On("FindByKey", mock.Anything, userID, date, models.MealTypeSnack, (*int)(nil)).Return(existing, nil)
	repos.MealSummaries.On("Upsert", mock.Anything, mock.AnythingOfType("*models.MealNutritionSummary")).Return(nil)

	estimator := new(mocks.MockNutrientEstimator)
	estimator.On("Estimate", mock.Anything, userID, date, []models.FoodEntry{}).Return([]EstimatedNutrient{}, nil)

	service := NewMealNutritionService(mocks.NewFakeUnitOfWork(repos.Repos()), NewPlanGate(clock), estimator, clock)
	summary, err := service.Compute(context.Background(), userID, date, models.MealTypeSnack, nil)

	assert.NoError(t, err)
	assert.Equal(t, existingID, summary.ID)
}

func TestMealNutritionService_LosingInsertAdoptsWinnerRow(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repos := mocks.NewMockRepos()
	clock := &mocks.FixedClock{Instant: date}

	winnerID := uuid.New()
	winner := &models.MealNutritionSummary{
		ID:        winnerID,
		UserID:    userID,
		Date:      date,
		MealType:  models.MealTypeMain,
		MealIndex: intPtr(1),
	}

	repos.Users.On("FindByID", mock.Anything, userID).Return(paidUser(userID), nil)
	repos.FoodEntries.On("FindByUserDateTypeIndex", mock.Anything, userID, date, models.MealTypeMain, intPtr(1)).Return([]models.FoodEntry{}, nil)
	// Both sides of the race miss the initial lookup; the unique key on
	// (user, date, meal_type, meal_index) rejects the second insert and
	// the loser re-reads the winning row.
	repos.MealSummaries.On("FindByKey", mock.Anything, userID, date, models.MealTypeMain, intPtr(1)).Return(nil, gorm.ErrRecordNotFound).Once()
	repos.MealSummaries.On("Upsert", mock.Anything, mock.AnythingOfType("*models.MealNutritionSummary")).Return(gorm.ErrDuplicatedKey).Once()
	repos.MealSummaries.On("FindByKey", mock.Anything, userID, date, models.MealTypeMain, intPtr(1)).Return(winner, nil).Once()
	repos.MealSummaries.On("Upsert", mock.Anything, mock.AnythingOfType("*models.MealNutritionSummary")).Return(nil).Once()

	estimator := new(mocks.MockNutrientEstimator)
	estimator.On("Estimate", mock.Anything, userID, date, []models.FoodEntry{}).Return([]EstimatedNutrient{}, nil)

	service := NewMealNutritionService(mocks.NewFakeUnitOfWork(repos.Repos()), NewPlanGate(clock), estimator, clock)
	summary, err := service.Compute(context.Background(), userID, date, models.MealTypeMain, intPtr(1))

	assert.NoError(t, err)
	assert.Equal(t, winnerID, summary.ID)
	repos.MealSummaries.AssertExpectations(t)
}

func TestMealNutritionService_EstimatorFailureIsWrapped(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repos := mocks.NewMockRepos()
	clock := &mocks.FixedClock{Instant: date}

	cause := errors.New("upstream timeout")
	repos.Users.On("FindByID", mock.Anything, userID).Return(paidUser(userID), nil)
	repos.FoodEntries.On("FindByUserDateTypeIndex", mock.Anything, userID, date, models.MealTypeMain, intPtr(2)).Return([]models.FoodEntry{}, nil)

	estimator := new(mocks.MockNutrientEstimator)
	estimator.On("Estimate", mock.Anything, userID, date, []models.FoodEntry{}).Return(nil, cause)

	service := NewMealNutritionService(mocks.NewFakeUnitOfWork(repos.Repos()), NewPlanGate(clock), estimator, clock)
	_, err := service.Compute(context.Background(), userID, date, models.MealTypeMain, intPtr(2))

	var failed *EstimationFailedError
	assert.ErrorAs(t, err, &failed)
	assert.ErrorIs(t, err, cause)
	repos.MealSummaries.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestMealNutritionService_FreeUserBlockedBeforeEstimation(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repos := mocks.NewMockRepos()
	clock := &mocks.FixedClock{Instant: date}

	repos.Users.On("FindByID", mock.Anything, userID).Return(&models.User{ID: userID, Plan: models.PlanFree}, nil)

	estimator := new(mocks.MockNutrientEstimator)

	service := NewMealNutritionService(mocks.NewFakeUnitOfWork(repos.Repos()), NewPlanGate(clock), estimator, clock)
	_, err := service.Compute(context.Background(), userID, date, models.MealTypeMain, intPtr(1))

	var premium *PremiumRequiredError
	assert.ErrorAs(t, err, &premium)
	estimator.AssertNotCalled(t, "Estimate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

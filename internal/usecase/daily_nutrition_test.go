package usecase_test

import (
	"context"
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

func mealSummaryWith(userID uuid.UUID, date time.Time, mealType string, mealIndex *int, nutrients ...models.MealSummaryNutrient) models.MealNutritionSummary {
	return models.MealNutritionSummary{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		MealType:  mealType,
		MealIndex: mealIndex,
		Nutrients: nutrients,
	}
}

func TestDailyNutritionService_SumsPerCodeAcrossMeals(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := date.Add(20 * time.Hour)
	repos := mocks.NewMockRepos()

	meals := []models.MealNutritionSummary{
		mealSummaryWith(userID, date, models.MealTypeMain, intPtr(1),
			models.MealSummaryNutrient{Code: models.NutrientProtein, Value: 30, Unit: "g", Source: models.NutrientSourceLLM},
			models.MealSummaryNutrient{Code: models.NutrientSodium, Value: 800, Unit: "mg", Source: models.NutrientSourceLLM},
		),
		mealSummaryWith(userID, date, models.MealTypeMain, intPtr(2),
			models.MealSummaryNutrient{Code: models.NutrientProtein, Value: 25, Unit: "g", Source: models.NutrientSourceLLM},
		),
		mealSummaryWith(userID, date, models.MealTypeSnack, nil,
			models.MealSummaryNutrient{Code: models.NutrientProtein, Value: 10, Unit: "g", Source: models.NutrientSourceLLM},
			models.MealSummaryNutrient{Code: models.NutrientFiber, Value: 4, Unit: "g", Source: models.NutrientSourceLLM},
		),
	}

	repos.MealSummaries.On("FindAllByUserAndDate", mock.Anything, userID, date).Return(meals, nil)
	repos.DailySummaries.On("FindByUserAndDate", mock.Anything, userID, date).Return(nil, gorm.ErrRecordNotFound)
	repos.DailySummaries.On("Upsert", mock.Anything, mock.AnythingOfType("*models.DailyNutritionSummary")).Return(nil)

	service := NewDailyNutritionService(mocks.NewFakeUnitOfWork(repos.Repos()), NewPlanGate(&mocks.FixedClock{Instant: now}), &mocks.FixedClock{Instant: now})
	summary, err := service.Aggregate(context.Background(), repos.Repos(), userID, date)

	assert.NoError(t, err)
	assert.Len(t, summary.Nutrients, 3)

	byCode := make(map[models.NutrientCode]models.DailySummaryNutrient)
	for _, n := range summary.Nutrients {
		byCode[n.Code] = n
	}
	assert.Equal(t, 65.0, byCode[models.NutrientProtein].Value)
	assert.Equal(t, 800.0, byCode[models.NutrientSodium].Value)
	assert.Equal(t, 4.0, byCode[models.NutrientFiber].Value)
	assert.Equal(t, now, summary.GeneratedAt)
}

func TestDailyNutritionService_FirstObservedUnitWins(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repos := mocks.NewMockRepos()

	meals := []models.MealNutritionSummary{
		mealSummaryWith(userID, date, models.MealTypeMain, intPtr(1),
			models.MealSummaryNutrient{Code: models.NutrientVitaminD, Value: 10, Unit: "mcg", Source: models.NutrientSourceLLM},
		),
		mealSummaryWith(userID, date, models.MealTypeMain, intPtr(2),
			models.MealSummaryNutrient{Code: models.NutrientVitaminD, Value: 5, Unit: "IU", Source: models.NutrientSourceLLM},
		),
	}

	repos.MealSummaries.On("FindAllByUserAndDate", mock.Anything, userID, date).Return(meals, nil)
	repos.DailySummaries.On("FindByUserAndDate", mock.Anything, userID, date).Return(nil, gorm.ErrRecordNotFound)
	repos.DailySummaries.On("Upsert", mock.Anything, mock.AnythingOfType("*models.DailyNutritionSummary")).Return(nil)

	service := NewDailyNutritionService(mocks.NewFakeUnitOfWork(repos.Repos()), nil, &mocks.FixedClock{Instant: date})
	summary, err := service.Aggregate(context.Background(), repos.Repos(), userID, date)

	assert.NoError(t, err)
	assert.Len(t, summary.Nutrients, 1)
	assert.Equal(t, 15.0, summary.Nutrients[0].Value)
	assert.Equal(t, "mcg", summary.Nutrients[0].Unit)
}

func TestDailyNutritionService_EmptyDayYieldsEmptySummary(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repos := mocks.NewMockRepos()

	repos.MealSummaries.On("FindAllByUserAndDate", mock.Anything, userID, date).Return([]models.MealNutritionSummary{}, nil)
	repos.DailySummaries.On("FindByUserAndDate", mock.Anything, userID, date).Return(nil, gorm.ErrRecordNotFound)
	repos.DailySummaries.On("Upsert", mock.Anything, mock.AnythingOfType("*models.DailyNutritionSummary")).Return(nil)

	service := NewDailyNutritionService(mocks.NewFakeUnitOfWork(repos.Repos()), nil, &mocks.FixedClock{Instant: date})
	summary, err := service.Aggregate(context.Background(), repos.Repos(), userID, date)

	assert.NoError(t, err)
	assert.Empty(t, summary.Nutrients)
}

func TestDailyNutritionService_RecomputeKeepsRowID(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repos := mocks.NewMockRepos()

	existingID := uuid.New()
	existing := &models.DailyNutritionSummary{ID: existingID, UserID: userID, Date: date}

	repos.MealSummaries.On("FindAllByUserAndDate", mock.Anything, userID, date).Return([]models.MealNutritionSummary{}, nil)
	repos.DailySummaries.On("FindByUserAndDate", mock.Anything, userID, date).Return(existing, nil)
	repos.DailySummaries.On("Upsert", mock.Anything, mock.AnythingOfType("*models.DailyNutritionSummary")).Return(nil)

	service := NewDailyNutritionService(mocks.NewFakeUnitOfWork(repos.Repos()), nil, &mocks.FixedClock{Instant: date})
	summary, err := service.Aggregate(context.Background(), repos.Repos(), userID, date)

	assert.NoError(t, err)
	assert.Equal(t, existingID, summary.ID)
}

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

func recentReports(userID uuid.UUID, n int) []models.DailyNutritionReport {
	reports := make([]models.DailyNutritionReport, 0, n)
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		reports = append(reports, models.DailyNutritionReport{
			ID:     uuid.New(),
			UserID: userID,
			Date:   base.AddDate(0, 0, -i),
		})
	}
	return reports
}

func generatedRecommendation() *GeneratedRecommendation {
	return &GeneratedRecommendation{
		Body: "Lean into protein-forward dinners this week.",
		Tips: []string{"Prep grains ahead", "Keep fruit visible"},
		Meals: []RecommendedMealIdea{
			{Title: "Chicken and quinoa bowl", Description: "High protein", Ingredients: []string{"chicken", "quinoa", "spinach"}, NutritionFocus: "protein"},
			{Title: "Lentil soup", Description: "Fiber rich", Ingredients: []string{"lentils", "carrot", "onion"}, NutritionFocus: "fiber"},
			{Title: "Salmon with rice", Description: "Omega-3", Ingredients: []string{"salmon", "rice", "broccoli"}, NutritionFocus: "fat quality"},
		},
	}
}

func recommendationService(repos *mocks.MockRepos, generator *mocks.MockRecommendationGenerator, now time.Time) *RecommendationService {
	clock := &mocks.FixedClock{Instant: now}
	return NewRecommendationService(
		mocks.NewFakeUnitOfWork(repos.Repos()),
		NewPlanGate(clock),
		generator,
		clock,
		DefaultRecommendationConfig(),
	)
}

func TestRecommendationService_NotEnoughReports(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repos := mocks.NewMockRepos()

	repos.Users.On("FindByID", mock.Anything, userID).Return(paidUser(userID), nil)
	repos.Profiles.On("FindByUserID", mock.Anything, userID).Return(profileWithMeals(userID, 3), nil)
	repos.Reports.On("FindRecentByUserID", mock.Anything, userID, 5).Return(recentReports(userID, 3), nil)

	generator := new(mocks.MockRecommendationGenerator)
	service := recommendationService(repos, generator, date)

	_, err := service.Generate(context.Background(), userID, date)

	var notEnough *NotEnoughDailyReportsError
	assert.ErrorAs(t, err, &notEnough)
	assert.Equal(t, 3, notEnough.Have)
	assert.Equal(t, 5, notEnough.Need)
	generator.AssertNotCalled(t, "GenerateMealRecommendation", mock.Anything, mock.Anything)
}

func TestRecommendationService_CooldownActive(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := date.Add(12 * time.Hour)
	repos := mocks.NewMockRepos()

	repos.Users.On("FindByID", mock.Anything, userID).Return(paidUser(userID), nil)
	repos.Profiles.On("FindByUserID", mock.Anything, userID).Return(profileWithMeals(userID, 3), nil)
	repos.Reports.On("FindRecentByUserID", mock.Anything, userID, 5).Return(recentReports(userID, 5), nil)
	repos.Recommendations.On("FindLatestByUserID", mock.Anything, userID).Return(&models.MealRecommendation{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now.Add(-10 * time.Minute),
	}, nil)

	generator := new(mocks.MockRecommendationGenerator)
	service := recommendationService(repos, generator, now)

	_, err := service.Generate(context.Background(), userID, date)

	var cooldown *RecommendationCooldownError
	assert.ErrorAs(t, err, &cooldown)
	assert.Equal(t, 50, cooldown.RemainingMinutes)
	generator.AssertNotCalled(t, "GenerateMealRecommendation", mock.Anything, mock.Anything)
}

func TestRecommendationService_CooldownBoundaryAllows(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := date.Add(12 * time.Hour)
	repos := mocks.NewMockRepos()

	repos.Users.On("FindByID", mock.Anything, userID).Return(paidUser(userID), nil)
	repos.Profiles.On("FindByUserID", mock.Anything, userID).Return(profileWithMeals(userID, 3), nil)
	repos.Reports.On("FindRecentByUserID", mock.Anything, userID, 5).Return(recentReports(userID, 5), nil)
	repos.Recommendations.On("FindLatestByUserID", mock.Anything, userID).Return(&models.MealRecommendation{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now.Add(-60 * time.Minute),
	}, nil)
	repos.Recommendations.On("CountByUserAndCreatedDate", mock.Anything, userID, date).Return(int64(1), nil)
	repos.Recommendations.On("Create", mock.Anything, mock.AnythingOfType("*models.MealRecommendation")).Return(nil)

	generator := new(mocks.MockRecommendationGenerator)
	generator.On("GenerateMealRecommendation", mock.Anything, mock.AnythingOfType("*usecase.RecommendationInput")).Return(generatedRecommendation(), nil)

	service := recommendationService(repos, generator, now)
	rec, err := service.Generate(context.Background(), userID, date)

	assert.NoError(t, err)
	assert.Equal(t, now, rec.CreatedAt)
}

func TestRecommendationService_DailyCapReached(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repos := mocks.NewMockRepos()

	repos.Users.On("FindByID", mock.Anything, userID).Return(paidUser(userID), nil)
	repos.Profiles.On("FindByUserID", mock.Anything, userID).Return(profileWithMeals(userID, 3), nil)
	repos.Reports.On("FindRecentByUserID", mock.Anything, userID, 5).Return(recentReports(userID, 5), nil)
	repos.Recommendations.On("FindLatestByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
	repos.Recommendations.On("CountByUserAndCreatedDate", mock.Anything, userID, date).Return(int64(3), nil)

	generator := new(mocks.MockRecommendationGenerator)
	service := recommendationService(repos, generator, date)

	_, err := service.Generate(context.Background(), userID, date)

	var limit *RecommendationDailyLimitError
	assert.ErrorAs(t, err, &limit)
	assert.Equal(t, 3, limit.CurrentCount)
	assert.Equal(t, 3, limit.Limit)
	generator.AssertNotCalled(t, "GenerateMealRecommendation", mock.Anything, mock.Anything)
}

func TestRecommendationService_GeneratesAndPersistsMealsInOrder(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := date.Add(8 * time.Hour)
	repos := mocks.NewMockRepos()

	repos.Users.On("FindByID", mock.Anything, userID).Return(paidUser(userID), nil)
	repos.Profiles.On("FindByUserID", mock.Anything, userID).Return(profileWithMeals(userID, 3), nil)
	repos.Reports.On("FindRecentByUserID", mock.Anything, userID, 5).Return(recentReports(userID, 5), nil)
	repos.Recommendations.On("FindLatestByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
	repos.Recommendations.On("CountByUserAndCreatedDate", mock.Anything, userID, date).Return(int64(0), nil)
	repos.Recommendations.On("Create", mock.Anything, mock.AnythingOfType("*models.MealRecommendation")).Return(nil)

	generator := new(mocks.MockRecommendationGenerator)
	generator.On("GenerateMealRecommendation", mock.Anything, mock.AnythingOfType("*usecase.RecommendationInput")).Return(generatedRecommendation(), nil)

	service := recommendationService(repos, generator, now)
	rec, err := service.Generate(context.Background(), userID, date)

	assert.NoError(t, err)
	assert.Equal(t, userID, rec.UserID)
	assert.Equal(t, date, rec.GeneratedForDate)
	assert.Len(t, rec.Meals, 3)
	assert.Equal(t, 1, rec.Meals[0].Position)
	assert.Equal(t, 2, rec.Meals[1].Position)
	assert.Equal(t, 3, rec.Meals[2].Position)
	assert.Equal(t, "Chicken and quinoa bowl", rec.Meals[0].Title)
	repos.Recommendations.AssertExpectations(t)
}

func TestRecommendationService_GeneratorFailureConsumesNoBudget(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repos := mocks.NewMockRepos()

	repos.Users.On("FindByID", mock.Anything, userID).Return(paidUser(userID), nil)
	repos.Profiles.On("FindByUserID", mock.Anything, userID).Return(profileWithMeals(userID, 3), nil)
	repos.Reports.On("FindRecentByUserID", mock.Anything, userID, 5).Return(recentReports(userID, 5), nil)
	repos.Recommendations.On("FindLatestByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
	repos.Recommendations.On("CountByUserAndCreatedDate", mock.Anything, userID, date).Return(int64(0), nil)

	generator := new(mocks.MockRecommendationGenerator)
	generator.On("GenerateMealRecommendation", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	service := recommendationService(repos, generator, date)
	_, err := service.Generate(context.Background(), userID, date)

	var failed *RecommendationGenerationFailedError
	assert.ErrorAs(t, err, &failed)
	repos.Recommendations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

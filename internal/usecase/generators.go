package usecase

import (
	"context"
	"time"

	"nutrilog/internal/models"

	"github.com/google/uuid"
)

// EstimatedNutrient is one (code, amount, provenance) tuple returned by
// the estimator.
type EstimatedNutrient struct {
	Code   models.NutrientCode
	Value  float64
	Unit   string
	Source models.NutrientSource
}

// NutrientEstimator maps the food entries of one meal slot onto the
// full nutrient code set. An empty entry list is valid and must yield
// every required code with a zero amount.
type NutrientEstimator interface {
	Estimate(ctx context.Context, userID uuid.UUID, date time.Time, entries []models.FoodEntry) ([]EstimatedNutrient, error)
}

type ReportInput struct {
	UserID        uuid.UUID
	Date          time.Time
	Profile       *models.UserProfile
	Snapshot      *models.DailyTargetSnapshot
	DailySummary  *models.DailyNutritionSummary
	MealSummaries []models.MealNutritionSummary
}

type GeneratedReport struct {
	Summary           string
	GoodPoints        []string
	ImprovementPoints []string
	TomorrowFocus     []string
}

// ReportGenerator authors the narrative daily review. Implementations
// guarantee a non-empty summary and three non-empty string lists.
type ReportGenerator interface {
	GenerateDailyReport(ctx context.Context, input *ReportInput) (*GeneratedReport, error)
}

type RecommendationInput struct {
	UserID  uuid.UUID
	Profile *models.UserProfile
	Reports []models.DailyNutritionReport
}

type RecommendedMealIdea struct {
	Title          string
	Description    string
	Ingredients    []string
	NutritionFocus string
}

type GeneratedRecommendation struct {
	Body  string
	Tips  []string
	Meals []RecommendedMealIdea
}

// RecommendationGenerator authors the suggestion block: a body, 2-5
// tips and exactly three concrete meal ideas.
type RecommendationGenerator interface {
	GenerateMealRecommendation(ctx context.Context, input *RecommendationInput) (*GeneratedRecommendation, error)
}

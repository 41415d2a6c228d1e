package mocks

import (
	"context"
	"time"

	"nutrilog/internal/models"
	"nutrilog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockNutrientEstimator struct {
	mock.Mock
}

func (m *MockNutrientEstimator) Estimate(ctx context.Context, userID uuid.UUID, date time.Time, entries []models.FoodEntry) ([]usecase.EstimatedNutrient, error) {
	args := m.Called(ctx, userID, date, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usecase.EstimatedNutrient), args.Error(1)
}

type MockReportGenerator struct {
	mock.Mock
}

func (m *MockReportGenerator) GenerateDailyReport(ctx context.Context, input *usecase.ReportInput) (*usecase.GeneratedReport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.GeneratedReport), args.Error(1)
}

type MockRecommendationGenerator struct {
	mock.Mock
}

func (m *MockRecommendationGenerator) GenerateMealRecommendation(ctx context.Context, input *usecase.RecommendationInput) (*usecase.GeneratedRecommendation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.GeneratedRecommendation), args.Error(1)
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.Instant
}

package mocks

import (
	"context"
	"time"

	"nutrilog/internal/models"
	"nutrilog/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAllActive(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockFoodEntryRepository struct {
	mock.Mock
}

func (m *MockFoodEntryRepository) Create(ctx context.Context, entry *models.FoodEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFoodEntryRepository) Update(ctx context.Context, entry *models.FoodEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFoodEntryRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockFoodEntryRepository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.FoodEntry, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodEntry), args.Error(1)
}

func (m *MockFoodEntryRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.FoodEntry, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).([]models.FoodEntry), args.Error(1)
}

func (m *MockFoodEntryRepository) FindByUserDateTypeIndex(ctx context.Context, userID uuid.UUID, date time.Time, mealType string, mealIndex *int) ([]models.FoodEntry, error) {
	args := m.Called(ctx, userID, date, mealType, mealIndex)
	return args.Get(0).([]models.FoodEntry), args.Error(1)
}

type MockTargetRepository struct {
	mock.Mock
}

func (m *MockTargetRepository) Create(ctx context.Context, target *models.TargetDefinition) error {
	args := m.Called(ctx, target)
	return args.Error(0)
}

func (m *MockTargetRepository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.TargetDefinition, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TargetDefinition), args.Error(1)
}

func (m *MockTargetRepository) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]models.TargetDefinition, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.TargetDefinition), args.Error(1)
}

func (m *MockTargetRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.TargetDefinition, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TargetDefinition), args.Error(1)
}

func (m *MockTargetRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTargetRepository) Activate(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockTargetRepository) Update(ctx context.Context, target *models.TargetDefinition) error {
	args := m.Called(ctx, target)
	return args.Error(0)
}

type MockTargetSnapshotRepository struct {
	mock.Mock
}

func (m *MockTargetSnapshotRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyTargetSnapshot, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyTargetSnapshot), args.Error(1)
}

func (m *MockTargetSnapshotRepository) Create(ctx context.Context, snapshot *models.DailyTargetSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

type MockMealSummaryRepository struct {
	mock.Mock
}

func (m *MockMealSummaryRepository) FindByKey(ctx context.Context, userID uuid.UUID, date time.Time, mealType string, mealIndex *int) (*models.MealNutritionSummary, error) {
	args := m.Called(ctx, userID, date, mealType, mealIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealNutritionSummary), args.Error(1)
}

func (m *MockMealSummaryRepository) FindAllByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.MealNutritionSummary, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).([]models.MealNutritionSummary), args.Error(1)
}

func (m *MockMealSummaryRepository) Upsert(ctx context.Context, summary *models.MealNutritionSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

type MockDailySummaryRepository struct {
	mock.Mock
}

func (m *MockDailySummaryRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyNutritionSummary, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyNutritionSummary), args.Error(1)
}

func (m *MockDailySummaryRepository) Upsert(ctx context.Context, summary *models.DailyNutritionSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

type MockDailyReportRepository struct {
	mock.Mock
}

func (m *MockDailyReportRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyNutritionReport, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyNutritionReport), args.Error(1)
}

func (m *MockDailyReportRepository) FindRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.DailyNutritionReport, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]models.DailyNutritionReport), args.Error(1)
}

func (m *MockDailyReportRepository) Create(ctx context.Context, report *models.DailyNutritionReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) Create(ctx context.Context, rec *models.MealRecommendation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecommendationRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*models.MealRecommendation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealRecommendation), args.Error(1)
}

func (m *MockRecommendationRepository) CountByUserAndCreatedDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecommendationRepository) FindAllByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.MealRecommendation, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]models.MealRecommendation), args.Error(1)
}

// MockRepos bundles one mock per repository and the matching
// repository.NutritionRepos view over them.
type MockRepos struct {
	Users           *MockUserRepository
	Profiles        *MockUserProfileRepository
	FoodEntries     *MockFoodEntryRepository
	Targets         *MockTargetRepository
	Snapshots       *MockTargetSnapshotRepository
	MealSummaries   *MockMealSummaryRepository
	DailySummaries  *MockDailySummaryRepository
	Reports         *MockDailyReportRepository
	Recommendations *MockRecommendationRepository
}

func NewMockRepos() *MockRepos {
	return &MockRepos{
		Users:           new(MockUserRepository),
		Profiles:        new(MockUserProfileRepository),
		FoodEntries:     new(MockFoodEntryRepository),
		Targets:         new(MockTargetRepository),
		Snapshots:       new(MockTargetSnapshotRepository),
		MealSummaries:   new(MockMealSummaryRepository),
		DailySummaries:  new(MockDailySummaryRepository),
		Reports:         new(MockDailyReportRepository),
		Recommendations: new(MockRecommendationRepository),
	}
}

func (m *MockRepos) Repos() *repository.NutritionRepos {
	return &repository.NutritionRepos{
		Users:           m.Users,
		Profiles:        m.Profiles,
		FoodEntries:     m.FoodEntries,
		Targets:         m.Targets,
		Snapshots:       m.Snapshots,
		MealSummaries:   m.MealSummaries,
		DailySummaries:  m.DailySummaries,
		Reports:         m.Reports,
		Recommendations: m.Recommendations,
	}
}

// FakeUnitOfWork runs the use-case function directly against the mock
// bundle; there is no transaction to commit or roll back.
type FakeUnitOfWork struct {
	repos *repository.NutritionRepos
}

func NewFakeUnitOfWork(repos *repository.NutritionRepos) *FakeUnitOfWork {
	return &FakeUnitOfWork{repos: repos}
}

func (u *FakeUnitOfWork) Do(ctx context.Context, fn func(repos *repository.NutritionRepos) error) error {
	return fn(u.repos)
}

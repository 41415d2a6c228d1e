package repository

import (
	"context"

	"gorm.io/gorm"
)

// NutritionRepos bundles the repositories one pipeline use-case needs,
// all bound to the same gorm session.
type NutritionRepos struct {
	Users           UserRepository
	Profiles        UserProfileRepository
	FoodEntries     FoodEntryRepository
	Targets         TargetRepository
	Snapshots       TargetSnapshotRepository
	MealSummaries   MealSummaryRepository
	DailySummaries  DailySummaryRepository
	Reports         DailyReportRepository
	Recommendations RecommendationRepository
}

func NewNutritionRepos(db *gorm.DB) *NutritionRepos {
	return &NutritionRepos{
		Users:           NewUserRepository(db),
		Profiles:        NewUserProfileRepository(db),
		FoodEntries:     NewFoodEntryRepository(db),
		Targets:         NewTargetRepository(db),
		Snapshots:       NewTargetSnapshotRepository(db),
		MealSummaries:   NewMealSummaryRepository(db),
		DailySummaries:  NewDailySummaryRepository(db),
		Reports:         NewDailyReportRepository(db),
		Recommendations: NewRecommendationRepository(db),
	}
}

// NutritionUnitOfWork runs a function against a repository bundle
// inside one transaction. The transaction commits when fn returns nil
// and rolls back on error or panic, so partial writes never escape.
type NutritionUnitOfWork interface {
	Do(ctx context.Context, fn func(repos *NutritionRepos) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewNutritionUnitOfWork(db *gorm.DB) NutritionUnitOfWork {
	return &gormUnitOfWork{db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(repos *NutritionRepos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewNutritionRepos(tx))
	})
}

package repository

import (
	"context"
	"time"

	"nutrilog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealSummaryRepository interface {
	FindByKey(ctx context.Context, userID uuid.UUID, date time.Time, mealType string, mealIndex *int) (*models.MealNutritionSummary, error)
	FindAllByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.MealNutritionSummary, error)
	Upsert(ctx context.Context, summary *models.MealNutritionSummary) error
}

type mealSummaryRepository struct {
	db *gorm.DB
}

func NewMealSummaryRepository(db *gorm.DB) MealSummaryRepository {
	return &mealSummaryRepository{db}
}

func (r *mealSummaryRepository) FindByKey(ctx context.Context, userID uuid.UUID, date time.Time, mealType string, mealIndex *int) (*models.MealNutritionSummary, error) {
	query := r.db.WithContext(ctx).
		Preload("Nutrients", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ? AND date = ? AND meal_type = ?", userID, models.NormalizeDate(date), mealType)

	if mealIndex != nil {
		query = query.Where("meal_index = ?", *mealIndex)
	} else {
		query = query.Where("meal_index IS NULL")
	}

	var summary models.MealNutritionSummary
	if err := query.First(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *mealSummaryRepository) FindAllByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.MealNutritionSummary, error) {
	var summaries []models.MealNutritionSummary
	err := r.db.WithContext(ctx).
		Preload("Nutrients", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ? AND date = ?", userID, models.NormalizeDate(date)).
		Order("meal_type ASC, meal_index ASC NULLS LAST").
		Find(&summaries).Error
	return summaries, err
}

// Upsert replaces the summary row and its nutrient children en bloc.
// Callers retain the existing id when recomputing a slot, so repeated
// runs overwrite the same row.
func (r *mealSummaryRepository) Upsert(ctx context.Context, summary *models.MealNutritionSummary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_nutrition_summary_id = ?", summary.ID).
			Delete(&models.MealSummaryNutrient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", summary.ID).
			Delete(&models.MealNutritionSummary{}).Error; err != nil {
			return err
		}
		return tx.Create(summary).Error
	})
}

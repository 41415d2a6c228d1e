package repository

import (
	"context"
	"time"

	"nutrilog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DailySummaryRepository interface {
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyNutritionSummary, error)
	Upsert(ctx context.Context, summary *models.DailyNutritionSummary) error
}

type dailySummaryRepository struct {
	db *gorm.DB
}

func NewDailySummaryRepository(db *gorm.DB) DailySummaryRepository {
	return &dailySummaryRepository{db}
}

func (r *dailySummaryRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyNutritionSummary, error) {
	var summary models.DailyNutritionSummary
	err := r.db.WithContext(ctx).
		Preload("Nutrients", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ? AND date = ?", userID, models.NormalizeDate(date)).
		First(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *dailySummaryRepository) Upsert(ctx context.Context, summary *models.DailyNutritionSummary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("daily_nutrition_summary_id = ?", summary.ID).
			Delete(&models.DailySummaryNutrient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", summary.ID).
			Delete(&models.DailyNutritionSummary{}).Error; err != nil {
			return err
		}
		return tx.Create(summary).Error
	})
}

package repository

import (
	"context"
	"time"

	"nutrilog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DailyReportRepository interface {
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyNutritionReport, error)
	FindRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.DailyNutritionReport, error)
	Create(ctx context.Context, report *models.DailyNutritionReport) error
}

type dailyReportRepository struct {
	db *gorm.DB
}

func NewDailyReportRepository(db *gorm.DB) DailyReportRepository {
	return &dailyReportRepository{db}
}

func (r *dailyReportRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyNutritionReport, error) {
	var report models.DailyNutritionReport
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, models.NormalizeDate(date)).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *dailyReportRepository) FindRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.DailyNutritionReport, error) {
	var reports []models.DailyNutritionReport
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&reports).Error
	return reports, err
}

// Create inserts the report. The (user_id, date) unique index makes a
// racing second insert fail with gorm.ErrDuplicatedKey, which the
// use-case surfaces as an already-exists conflict.
func (r *dailyReportRepository) Create(ctx context.Context, report *models.DailyNutritionReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

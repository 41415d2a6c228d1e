package repository

import (
	"context"
	"time"

	"nutrilog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecommendationRepository interface {
	Create(ctx context.Context, rec *models.MealRecommendation) error
	FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*models.MealRecommendation, error)
	CountByUserAndCreatedDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error)
	FindAllByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.MealRecommendation, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db}
}

func (r *recommendationRepository) Create(ctx context.Context, rec *models.MealRecommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recommendationRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*models.MealRecommendation, error) {
	var rec models.MealRecommendation
	err := r.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepository) CountByUserAndCreatedDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error) {
	day := models.NormalizeDate(date)
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.MealRecommendation{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, day, day.AddDate(0, 0, 1)).
		Count(&count).Error
	return count, err
}

func (r *recommendationRepository) FindAllByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.MealRecommendation, error) {
	var recs []models.MealRecommendation
	err := r.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

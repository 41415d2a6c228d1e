package repository

import (
	"context"
	"time"

	"nutrilog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodEntryRepository owns the logged meals. The pipeline only reads
// from it; writes come from the food CRUD handlers. Soft-deleted rows
// are excluded by gorm's DeletedAt handling.
type FoodEntryRepository interface {
	Create(ctx context.Context, entry *models.FoodEntry) error
	Update(ctx context.Context, entry *models.FoodEntry) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.FoodEntry, error)
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.FoodEntry, error)
	FindByUserDateTypeIndex(ctx context.Context, userID uuid.UUID, date time.Time, mealType string, mealIndex *int) ([]models.FoodEntry, error)
}

type foodEntryRepository struct {
	db *gorm.DB
}

func NewFoodEntryRepository(db *gorm.DB) FoodEntryRepository {
	return &foodEntryRepository{db}
}

func (r *foodEntryRepository) Create(ctx context.Context, entry *models.FoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *foodEntryRepository) Update(ctx context.Context, entry *models.FoodEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *foodEntryRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.FoodEntry{}).Error
}

func (r *foodEntryRepository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *foodEntryRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, models.NormalizeDate(date)).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *foodEntryRepository) FindByUserDateTypeIndex(ctx context.Context, userID uuid.UUID, date time.Time, mealType string, mealIndex *int) ([]models.FoodEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND meal_type = ?", userID, models.NormalizeDate(date), mealType)

	// Snack entries carry no index; the day's snacks form one slot.
	if mealIndex != nil {
		query = query.Where("meal_index = ?", *mealIndex)
	} else {
		query = query.Where("meal_index IS NULL")
	}

	var entries []models.FoodEntry
	err := query.Order("created_at ASC").Find(&entries).Error
	return entries, err
}

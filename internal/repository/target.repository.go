package repository

import (
	"context"

	"nutrilog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TargetRepository interface {
	Create(ctx context.Context, target *models.TargetDefinition) error
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.TargetDefinition, error)
	FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]models.TargetDefinition, error)
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.TargetDefinition, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Activate(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	Update(ctx context.Context, target *models.TargetDefinition) error
}

type targetRepository struct {
	db *gorm.DB
}

func NewTargetRepository(db *gorm.DB) TargetRepository {
	return &targetRepository{db}
}

func (r *targetRepository) Create(ctx context.Context, target *models.TargetDefinition) error {
	return r.db.WithContext(ctx).Create(target).Error
}

func (r *targetRepository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.TargetDefinition, error) {
	var target models.TargetDefinition
	err := r.db.WithContext(ctx).
		Preload("Nutrients", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("id = ? AND user_id = ?", id, userID).
		First(&target).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *targetRepository) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]models.TargetDefinition, error) {
	var targets []models.TargetDefinition
	err := r.db.WithContext(ctx).
		Preload("Nutrients", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&targets).Error
	return targets, err
}

func (r *targetRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.TargetDefinition, error) {
	var target models.TargetDefinition
	err := r.db.WithContext(ctx).
		Preload("Nutrients", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&target).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *targetRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TargetDefinition{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Activate flips the chosen target on and every other target of the
// user off inside one transaction, keeping the at-most-one-active
// invariant.
func (r *targetRepository) Activate(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.TargetDefinition{}).
			Where("user_id = ? AND id <> ?", userID, id).
			Update("is_active", false).Error; err != nil {
			return err
		}
		result := tx.Model(&models.TargetDefinition{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *targetRepository) Update(ctx context.Context, target *models.TargetDefinition) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(target).Error
}

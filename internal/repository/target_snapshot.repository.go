package repository

import (
	"context"
	"time"

	"nutrilog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TargetSnapshotRepository interface {
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyTargetSnapshot, error)
	Create(ctx context.Context, snapshot *models.DailyTargetSnapshot) error
}

type targetSnapshotRepository struct {
	db *gorm.DB
}

func NewTargetSnapshotRepository(db *gorm.DB) TargetSnapshotRepository {
	return &targetSnapshotRepository{db}
}

func (r *targetSnapshotRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyTargetSnapshot, error) {
	var snapshot models.DailyTargetSnapshot
	err := r.db.WithContext(ctx).
		Preload("Nutrients", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ? AND date = ?", userID, models.NormalizeDate(date)).
		First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Create inserts in a nested transaction so that, inside an enclosing
// unit of work, a (user_id, date) duplicate only aborts the savepoint
// and the caller can re-read the winning row.
func (r *targetSnapshotRepository) Create(ctx context.Context, snapshot *models.DailyTargetSnapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(snapshot).Error
	})
}

package usecase

import (
	"context"
	"errors"
	"time"

	"nutrilog/internal/models"
	"nutrilog/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TargetSnapshotEnsurer is the idempotent factory for the frozen
// per-day target. The first call for a (user, date) copies the active
// target's nutrient list; every later call returns the stored row
// untouched, regardless of edits to the source target.
type TargetSnapshotEnsurer struct {
	clock Clock
}

func NewTargetSnapshotEnsurer(clock Clock) *TargetSnapshotEnsurer {
	return &TargetSnapshotEnsurer{clock: clock}
}

func (e *TargetSnapshotEnsurer) Ensure(ctx context.Context, repos *repository.NutritionRepos, userID uuid.UUID, date time.Time) (*models.DailyTargetSnapshot, error) {
	day := models.NormalizeDate(date)

	snapshot, err := repos.Snapshots.FindByUserAndDate(ctx, userID, day)
	if err == nil {
		return snapshot, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	target, err := repos.Targets.FindActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NoActiveTargetError{UserID: userID}
		}
		return nil, err
	}

	nutrients := make([]models.SnapshotNutrient, 0, len(target.Nutrients))
	for _, n := range target.Nutrients {
		nutrients = append(nutrients, models.SnapshotNutrient{
			Code:   n.Code,
			Value:  n.Value,
			Unit:   n.Unit,
			Source: n.Source,
		})
	}

	snapshot = &models.DailyTargetSnapshot{
		ID:        uuid.New(),
		CreatedAt: e.clock.Now(),
		UserID:    userID,
		Date:      day,
		TargetID:  target.ID,
		Nutrients: nutrients,
	}

	if err := repos.Snapshots.Create(ctx, snapshot); err != nil {
		// A concurrent writer won the (user, date) insert; theirs is
		// the snapshot of record.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repos.Snapshots.FindByUserAndDate(ctx, userID, day)
		}
		return nil, err
	}
	return snapshot, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyTargetSnapshot freezes the active target's nutrient list for one
// (user, date). Write-once: later edits to the source target never
// touch the snapshot.
type DailyTargetSnapshot struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	UserID    uuid.UUID          `gorm:"type:uuid;uniqueIndex:idx_snapshot_user_date" json:"user_id"`
	Date      time.Time          `gorm:"type:date;uniqueIndex:idx_snapshot_user_date" json:"date"`
	TargetID  uuid.UUID          `gorm:"type:uuid" json:"target_id"`
	Nutrients []SnapshotNutrient `gorm:"constraint:OnDelete:CASCADE" json:"nutrients"`
}

func (s *DailyTargetSnapshot) TableName() string {
	return "daily_target_snapshots"
}

type SnapshotNutrient struct {
	ID                    uint           `gorm:"primaryKey" json:"-"`
	DailyTargetSnapshotID uuid.UUID      `gorm:"type:uuid;index;uniqueIndex:idx_snapshot_code" json:"-"`
	Code                  NutrientCode   `gorm:"type:varchar(32);uniqueIndex:idx_snapshot_code" json:"code"`
	Value                 float64        `json:"value"`
	Unit                  string         `json:"unit"`
	Source                NutrientSource `gorm:"type:varchar(16)" json:"source"`
}

func (n *SnapshotNutrient) TableName() string {
	return "snapshot_nutrients"
}

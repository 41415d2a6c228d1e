package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxTargetsPerUser caps stored target definitions per user.
const MaxTargetsPerUser = 5

// TargetDefinition is a user's nutrition target. At most one is active
// per user; the pipeline never reads a target directly, only through a
// DailyTargetSnapshot.
type TargetDefinition struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	UserID        uuid.UUID        `gorm:"type:uuid;index" json:"user_id"`
	Title         string           `json:"title"`
	GoalType      string           `json:"goal_type"`
	ActivityLevel string           `json:"activity_level"`
	IsActive      bool             `gorm:"index" json:"is_active"`
	Rationale     *string          `gorm:"type:text" json:"rationale,omitempty"`
	Disclaimer    *string          `gorm:"type:text" json:"disclaimer,omitempty"`
	Nutrients     []TargetNutrient `gorm:"constraint:OnDelete:CASCADE" json:"nutrients"`
}

func (t *TargetDefinition) TableName() string {
	return "target_definitions"
}

func (t *TargetDefinition) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TargetNutrient struct {
	ID                 uint           `gorm:"primaryKey" json:"-"`
	TargetDefinitionID uuid.UUID      `gorm:"type:uuid;index;uniqueIndex:idx_target_code" json:"-"`
	Code               NutrientCode   `gorm:"type:varchar(32);uniqueIndex:idx_target_code" json:"code"`
	Value              float64        `json:"value"`
	Unit               string         `json:"unit"`
	Source             NutrientSource `gorm:"type:varchar(16)" json:"source"`
}

func (n *TargetNutrient) TableName() string {
	return "target_nutrients"
}

type TargetNutrientRequest struct {
	Code   string  `json:"code" binding:"required"`
	Value  float64 `json:"value" binding:"min=0"`
	Unit   string  `json:"unit" binding:"required"`
	Source string  `json:"source" binding:"required,oneof=llm manual user_input"`
}

type CreateTargetRequest struct {
	Title         string                  `json:"title" binding:"required"`
	GoalType      string                  `json:"goal_type" binding:"required"`
	ActivityLevel string                  `json:"activity_level" binding:"required"`
	Rationale     *string                 `json:"rationale"`
	Disclaimer    *string                 `json:"disclaimer"`
	Nutrients     []TargetNutrientRequest `json:"nutrients" binding:"required"`
}

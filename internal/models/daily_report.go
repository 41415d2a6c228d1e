package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyNutritionReport is the LLM-authored narrative review of a day.
// Frozen once written; (user, date) is unique at the store so racing
// writers fail with a duplicate instead of overwriting.
type DailyNutritionReport struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt         time.Time `gorm:"index" json:"created_at"`
	UserID            uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_report_user_date" json:"user_id"`
	Date              time.Time `gorm:"type:date;uniqueIndex:idx_report_user_date" json:"date"`
	Summary           string    `gorm:"type:text" json:"summary"`
	GoodPoints        []string  `gorm:"serializer:json" json:"good_points"`
	ImprovementPoints []string  `gorm:"serializer:json" json:"improvement_points"`
	TomorrowFocus     []string  `gorm:"serializer:json" json:"tomorrow_focus"`
}

func (r *DailyNutritionReport) TableName() string {
	return "daily_nutrition_reports"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyNutritionSummary aggregates the day's meal summaries per
// nutrient code. One row per (user, date).
type DailyNutritionSummary struct {
	ID          uuid.UUID              `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID              `gorm:"type:uuid;uniqueIndex:idx_daily_summary_key" json:"user_id"`
	Date        time.Time              `gorm:"type:date;uniqueIndex:idx_daily_summary_key" json:"date"`
	Nutrients   []DailySummaryNutrient `gorm:"constraint:OnDelete:CASCADE" json:"nutrients"`
	GeneratedAt time.Time              `json:"generated_at"`
}

func (s *DailyNutritionSummary) TableName() string {
	return "daily_nutrition_summaries"
}

type DailySummaryNutrient struct {
	ID                      uint           `gorm:"primaryKey" json:"-"`
	DailyNutritionSummaryID uuid.UUID      `gorm:"type:uuid;index;uniqueIndex:idx_daily_nutrient_code" json:"-"`
	Code                    NutrientCode   `gorm:"type:varchar(32);uniqueIndex:idx_daily_nutrient_code" json:"code"`
	Value                   float64        `json:"value"`
	Unit                    string         `json:"unit"`
	Source                  NutrientSource `gorm:"type:varchar(16)" json:"source"`
}

func (n *DailySummaryNutrient) TableName() string {
	return "daily_summary_nutrients"
}

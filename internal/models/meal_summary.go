package models

import (
	"time"

	"github.com/google/uuid"
)

// MealNutritionSummary is the computed nutrient breakdown for one meal
// slot. Recomputation reuses the row id, so repeated runs overwrite
// instead of duplicating.
type MealNutritionSummary struct {
	ID          uuid.UUID             `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID             `gorm:"type:uuid;uniqueIndex:idx_meal_summary_key" json:"user_id"`
	Date        time.Time             `gorm:"type:date;uniqueIndex:idx_meal_summary_key" json:"date"`
	MealType    string                `gorm:"type:varchar(10);uniqueIndex:idx_meal_summary_key" json:"meal_type"`
	MealIndex   *int                  `gorm:"uniqueIndex:idx_meal_summary_key" json:"meal_index,omitempty"`
	Nutrients   []MealSummaryNutrient `gorm:"constraint:OnDelete:CASCADE" json:"nutrients"`
	GeneratedAt time.Time             `json:"generated_at"`
}

func (s *MealNutritionSummary) TableName() string {
	return "meal_nutrition_summaries"
}

type MealSummaryNutrient struct {
	ID                     uint           `gorm:"primaryKey" json:"-"`
	MealNutritionSummaryID uuid.UUID      `gorm:"type:uuid;index;uniqueIndex:idx_meal_nutrient_code" json:"-"`
	Code                   NutrientCode   `gorm:"type:varchar(32);uniqueIndex:idx_meal_nutrient_code" json:"code"`
	Value                  float64        `json:"value"`
	Unit                   string         `json:"unit"`
	Source                 NutrientSource `gorm:"type:varchar(16)" json:"source"`
}

func (n *MealSummaryNutrient) TableName() string {
	return "meal_summary_nutrients"
}

type ComputeMealNutritionRequest struct {
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	MealType  string `json:"meal_type" binding:"required"`
	MealIndex *int   `json:"meal_index"`
}

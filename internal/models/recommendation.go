package models

import (
	"time"

	"github.com/google/uuid"
)

// MealRecommendation is an LLM-authored suggestion block tied to a base
// date. Multiple rows per (user, date) are allowed; the daily cap in
// the use-case is the only multiplicity governor.
type MealRecommendation struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt        time.Time         `gorm:"index" json:"created_at"`
	UserID           uuid.UUID         `gorm:"type:uuid;index" json:"user_id"`
	GeneratedForDate time.Time         `gorm:"type:date;index" json:"generated_for_date"`
	Body             string            `gorm:"type:text" json:"body"`
	Tips             []string          `gorm:"serializer:json" json:"tips"`
	Meals            []RecommendedMeal `gorm:"constraint:OnDelete:CASCADE" json:"recommended_meals"`
}

func (r *MealRecommendation) TableName() string {
	return "meal_recommendations"
}

type RecommendedMeal struct {
	ID                   uint      `gorm:"primaryKey" json:"-"`
	MealRecommendationID uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Position             int       `json:"position"`
	Title                string    `json:"title"`
	Description          string    `gorm:"type:text" json:"description"`
	Ingredients          []string  `gorm:"serializer:json" json:"ingredients"`
	NutritionFocus       string    `json:"nutrition_focus"`
}

func (m *RecommendedMeal) TableName() string {
	return "recommended_meals"
}

type GenerateRecommendationRequest struct {
	BaseDate string `json:"base_date" binding:"omitempty,datetime=2006-01-02"`
}

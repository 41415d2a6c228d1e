package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MealTypeMain  = "main"
	MealTypeSnack = "snack"
)

// FoodEntry is a single logged item of food. Main meals carry a 1-based
// meal index; snacks carry none and are summarized per day as one slot.
type FoodEntry struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	UserID       uuid.UUID      `gorm:"type:uuid;index:idx_food_user_date" json:"user_id"`
	Date         time.Time      `gorm:"type:date;index:idx_food_user_date" json:"date"`
	MealType     string         `gorm:"type:varchar(10)" json:"meal_type"`
	MealIndex    *int           `json:"meal_index,omitempty"`
	Name         string         `json:"name"`
	AmountValue  *float64       `json:"amount_value,omitempty"`
	AmountUnit   *string        `json:"amount_unit,omitempty"`
	ServingCount *float64       `json:"serving_count,omitempty"`
	Note         *string        `json:"note,omitempty"`
}

func (e *FoodEntry) TableName() string {
	return "food_entries"
}

func (e *FoodEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Validate enforces the meal type/index pairing and that the entry has
// either a unit amount or a serving count.
func (e *FoodEntry) Validate() error {
	switch e.MealType {
	case MealTypeMain:
		if e.MealIndex == nil || *e.MealIndex < 1 {
			return errors.New("main meals require a meal_index of 1 or greater")
		}
	case MealTypeSnack:
		if e.MealIndex != nil {
			return errors.New("snacks must not carry a meal_index")
		}
	default:
		return errors.New("meal_type must be main or snack")
	}

	hasAmount := e.AmountValue != nil && *e.AmountValue > 0 && e.AmountUnit != nil && *e.AmountUnit != ""
	hasServing := e.ServingCount != nil && *e.ServingCount > 0
	if !hasAmount && !hasServing {
		return errors.New("either amount_value with amount_unit or serving_count must be positive")
	}
	return nil
}

type FoodEntryRequest struct {
	Date         string   `json:"date" binding:"required,datetime=2006-01-02"`
	MealType     string   `json:"meal_type" binding:"required,oneof=main snack"`
	MealIndex    *int     `json:"meal_index"`
	Name         string   `json:"name" binding:"required"`
	AmountValue  *float64 `json:"amount_value"`
	AmountUnit   *string  `json:"amount_unit"`
	ServingCount *float64 `json:"serving_count"`
	Note         *string  `json:"note"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the physical profile the pipeline reads. Owned by
// the profile API, read-only for the nutrition use-cases.
type UserProfile struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	UserID      uuid.UUID  `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	Sex         string     `json:"sex"`
	Birthdate   *time.Time `gorm:"type:date" json:"birthdate,omitempty"`
	HeightCm    *float64   `json:"height_cm,omitempty"`
	WeightKg    *float64   `json:"weight_kg,omitempty"`
	ImageID     *string    `json:"image_id,omitempty"`
	MealsPerDay *int       `json:"meals_per_day,omitempty" validate:"omitempty,min=1,max=6"`
}

func (p *UserProfile) TableName() string {
	return "user_profiles"
}

type UpsertProfileRequest struct {
	Sex         string   `json:"sex" binding:"omitempty,oneof=male female other"`
	Birthdate   string   `json:"birthdate" binding:"omitempty,datetime=2006-01-02"`
	HeightCm    *float64 `json:"height_cm" binding:"omitempty,gt=0"`
	WeightKg    *float64 `json:"weight_kg" binding:"omitempty,gt=0"`
	MealsPerDay *int     `json:"meals_per_day" binding:"omitempty,min=1,max=6"`
}

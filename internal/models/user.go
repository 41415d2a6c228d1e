package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PlanFree = "free"
	PlanPaid = "paid"
)

type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Name        string     `json:"name"`
	Email       string     `gorm:"uniqueIndex" json:"email"`
	Password    string     `json:"-"`
	Plan        string     `gorm:"default:free" json:"plan"`
	TrialEndsAt *time.Time `json:"trial_ends_at,omitempty"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
}

func (u *User) TableName() string {
	return "users"
}

// HasPremiumAccess reports whether the user may run premium pipeline
// operations at the given instant.
func (u *User) HasPremiumAccess(now time.Time) bool {
	if u.Plan == PlanPaid {
		return true
	}
	return u.TrialEndsAt != nil && u.TrialEndsAt.After(now)
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

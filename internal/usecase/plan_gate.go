package usecase

import (
	"context"
	"errors"

	"nutrilog/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanGate permits premium pipeline operations for users on an unexpired
// trial or a paid plan. Read-only.
type PlanGate struct {
	clock Clock
}

func NewPlanGate(clock Clock) *PlanGate {
	return &PlanGate{clock: clock}
}

func (g *PlanGate) EnsurePremium(ctx context.Context, users repository.UserRepository, userID uuid.UUID) error {
	user, err := users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &UserNotFoundError{UserID: userID}
		}
		return err
	}
	if !user.HasPremiumAccess(g.clock.Now()) {
		return &PremiumRequiredError{UserID: userID}
	}
	return nil
}

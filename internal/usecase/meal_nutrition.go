package usecase

import (
	"context"
	"errors"
	"time"

	"nutrilog/internal/models"
	"nutrilog/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealNutritionService computes the per-meal nutrition summary for one
// slot: it estimates the nutrients of the slot's food entries and
// upserts the per-meal row, then the caller typically refreshes the
// daily aggregate.
type MealNutritionService struct {
	uow       repository.NutritionUnitOfWork
	gate      *PlanGate
	estimator NutrientEstimator
	clock     Clock
}

func NewMealNutritionService(uow repository.NutritionUnitOfWork, gate *PlanGate, estimator NutrientEstimator, clock Clock) *MealNutritionService {
	return &MealNutritionService{
		uow:       uow,
		gate:      gate,
		estimator: estimator,
		clock:     clock,
	}
}

// validateSlot checks the meal type / index pairing before any IO.
func validateSlot(mealType string, mealIndex *int) error {
	switch mealType {
	case models.MealTypeMain:
		if mealIndex == nil || *mealIndex < 1 {
			return &InvalidMealIndexError{Reason: "main meals require an index of 1 or greater"}
		}
	case models.MealTypeSnack:
		if mealIndex != nil {
			return &InvalidMealIndexError{Reason: "snacks must not carry an index"}
		}
	default:
		return &InvalidMealTypeError{Value: mealType}
	}
	return nil
}

func (s *MealNutritionService) Compute(ctx context.Context, userID uuid.UUID, date time.Time, mealType string, mealIndex *int) (*models.MealNutritionSummary, error) {
	if err := validateSlot(mealType, mealIndex); err != nil {
		return nil, err
	}
	day := models.NormalizeDate(date)

	var summary *models.MealNutritionSummary
	err := s.uow.Do(ctx, func(repos *repository.NutritionRepos) error {
		if err := s.gate.EnsurePremium(ctx, repos.Users, userID); err != nil {
			return err
		}

		entries, err := repos.FoodEntries.FindByUserDateTypeIndex(ctx, userID, day, mealType, mealIndex)
		if err != nil {
			return err
		}

		estimated, err := s.estimator.Estimate(ctx, userID, day, entries)
		if err != nil {
			return &EstimationFailedError{UserID: userID, Date: day, MealType: mealType, Cause: err}
		}

		// Reuse the existing row id so recomputation overwrites
		// instead of duplicating.
		id := uuid.New()
		if existing, err := repos.MealSummaries.FindByKey(ctx, userID, day, mealType, mealIndex); err == nil {
			id = existing.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		nutrients := make([]models.MealSummaryNutrient, 0, len(estimated))
		for _, n := range estimated {
			nutrients = append(nutrients, models.MealSummaryNutrient{
				Code:   n.Code,
				Value:  n.Value,
				Unit:   n.Unit,
				Source: n.Source,
			})
		}

		summary = &models.MealNutritionSummary{
			ID:          id,
			UserID:      userID,
			Date:        day,
			MealType:    mealType,
			MealIndex:   mealIndex,
			Nutrients:   nutrients,
			GeneratedAt: s.clock.Now(),
		}
		if err := repos.MealSummaries.Upsert(ctx, summary); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
			// A concurrent compute for the same slot inserted first.
			// Adopt the winning row id and overwrite that row.
			winner, findErr := repos.MealSummaries.FindByKey(ctx, userID, day, mealType, mealIndex)
			if findErr != nil {
				return findErr
			}
			summary.ID = winner.ID
			return repos.MealSummaries.Upsert(ctx, summary)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

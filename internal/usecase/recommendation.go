package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"nutrilog/internal/models"
	"nutrilog/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecommendationConfig carries the rate-limit knobs for recommendation
// generation.
type RecommendationConfig struct {
	RequiredDays int
	CoolDown     time.Duration
	DailyCap     int
}

func DefaultRecommendationConfig() RecommendationConfig {
	return RecommendationConfig{
		RequiredDays: 5,
		CoolDown:     60 * time.Minute,
		DailyCap:     3,
	}
}

// RecommendationService produces meal recommendations from the user's
// recent daily reports. Cooldown and the daily cap are checked before
// the generator runs, so failed generations never consume budget.
type RecommendationService struct {
	uow       repository.NutritionUnitOfWork
	gate      *PlanGate
	generator RecommendationGenerator
	clock     Clock
	config    RecommendationConfig
}

func NewRecommendationService(
	uow repository.NutritionUnitOfWork,
	gate *PlanGate,
	generator RecommendationGenerator,
	clock Clock,
	config RecommendationConfig,
) *RecommendationService {
	return &RecommendationService{
		uow:       uow,
		gate:      gate,
		generator: generator,
		clock:     clock,
		config:    config,
	}
}

func (s *RecommendationService) Generate(ctx context.Context, userID uuid.UUID, baseDate time.Time) (*models.MealRecommendation, error) {
	day := models.NormalizeDate(baseDate)

	var rec *models.MealRecommendation
	err := s.uow.Do(ctx, func(repos *repository.NutritionRepos) error {
		if err := s.gate.EnsurePremium(ctx, repos.Users, userID); err != nil {
			return err
		}

		profile, err := repos.Profiles.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ProfileNotFoundError{UserID: userID}
			}
			return err
		}

		reports, err := repos.Reports.FindRecentByUserID(ctx, userID, s.config.RequiredDays)
		if err != nil {
			return err
		}
		if len(reports) < s.config.RequiredDays {
			return &NotEnoughDailyReportsError{Have: len(reports), Need: s.config.RequiredDays}
		}

		now := s.clock.Now()
		last, err := repos.Recommendations.FindLatestByUserID(ctx, userID)
		if err == nil {
			if elapsed := now.Sub(last.CreatedAt); elapsed < s.config.CoolDown {
				remaining := int(math.Ceil((s.config.CoolDown - elapsed).Minutes()))
				return &RecommendationCooldownError{RemainingMinutes: remaining}
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		count, err := repos.Recommendations.CountByUserAndCreatedDate(ctx, userID, day)
		if err != nil {
			return err
		}
		if int(count) >= s.config.DailyCap {
			return &RecommendationDailyLimitError{CurrentCount: int(count), Limit: s.config.DailyCap}
		}

		generated, err := s.generator.GenerateMealRecommendation(ctx, &RecommendationInput{
			UserID:  userID,
			Profile: profile,
			Reports: reports,
		})
		if err != nil {
			return &RecommendationGenerationFailedError{UserID: userID, Cause: err}
		}

		meals := make([]models.RecommendedMeal, 0, len(generated.Meals))
		for i, idea := range generated.Meals {
			meals = append(meals, models.RecommendedMeal{
				Position:       i + 1,
				Title:          idea.Title,
				Description:    idea.Description,
				Ingredients:    idea.Ingredients,
				NutritionFocus: idea.NutritionFocus,
			})
		}

		rec = &models.MealRecommendation{
			ID:               uuid.New(),
			CreatedAt:        now,
			UserID:           userID,
			GeneratedForDate: day,
			Body:             generated.Body,
			Tips:             generated.Tips,
			Meals:            meals,
		}
		return repos.Recommendations.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecommendationService) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.MealRecommendation, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []models.MealRecommendation
	err := s.uow.Do(ctx, func(repos *repository.NutritionRepos) error {
		var err error
		recs, err = repos.Recommendations.FindAllByUserID(ctx, userID, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

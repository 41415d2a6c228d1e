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

// DailyNutritionService folds the day's per-meal summaries into the
// single per-day row.
type DailyNutritionService struct {
	uow   repository.NutritionUnitOfWork
	gate  *PlanGate
	clock Clock
}

func NewDailyNutritionService(uow repository.NutritionUnitOfWork, gate *PlanGate, clock Clock) *DailyNutritionService {
	return &DailyNutritionService{uow: uow, gate: gate, clock: clock}
}

func (s *DailyNutritionService) Compute(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyNutritionSummary, error) {
	var summary *models.DailyNutritionSummary
	err := s.uow.Do(ctx, func(repos *repository.NutritionRepos) error {
		if err := s.gate.EnsurePremium(ctx, repos.Users, userID); err != nil {
			return err
		}
		var err error
		summary, err = s.Aggregate(ctx, repos, userID, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// Aggregate sums the per-meal values per nutrient code and upserts the
// daily row. The unit recorded per code is the first one observed in
// meal order; the estimator owns unit canonicalization. An empty day
// yields an empty nutrient list, not an error.
func (s *DailyNutritionService) Aggregate(ctx context.Context, repos *repository.NutritionRepos, userID uuid.UUID, date time.Time) (*models.DailyNutritionSummary, error) {
	day := models.NormalizeDate(date)

	meals, err := repos.MealSummaries.FindAllByUserAndDate(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	type total struct {
		value  float64
		unit   string
		source models.NutrientSource
	}
	totals := make(map[models.NutrientCode]*total)
	var order []models.NutrientCode
	for _, meal := range meals {
		for _, n := range meal.Nutrients {
			if t, ok := totals[n.Code]; ok {
				t.value += n.Value
				continue
			}
			totals[n.Code] = &total{value: n.Value, unit: n.Unit, source: n.Source}
			order = append(order, n.Code)
		}
	}

	id := uuid.New()
	if existing, err := repos.DailySummaries.FindByUserAndDate(ctx, userID, day); err == nil {
		id = existing.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	nutrients := make([]models.DailySummaryNutrient, 0, len(order))
	for _, code := range order {
		t := totals[code]
		nutrients = append(nutrients, models.DailySummaryNutrient{
			Code:   code,
			Value:  t.value,
			Unit:   t.unit,
			Source: t.source,
		})
	}

	summary := &models.DailyNutritionSummary{
		ID:          id,
		UserID:      userID,
		Date:        day,
		Nutrients:   nutrients,
		GeneratedAt: s.clock.Now(),
	}
	if err := repos.DailySummaries.Upsert(ctx, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

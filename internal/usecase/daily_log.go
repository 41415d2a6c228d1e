package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"nutrilog/internal/models"
	"nutrilog/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyLogStatus answers "is the day recorded?" for one (user, date).
type DailyLogStatus struct {
	UserID         uuid.UUID `json:"user_id"`
	Date           time.Time `json:"date"`
	MealsPerDay    int       `json:"meals_per_day"`
	IsCompleted    bool      `json:"is_completed"`
	FilledIndices  []int     `json:"filled_indices"`
	MissingIndices []int     `json:"missing_indices"`
}

// DailyLogChecker is the pure completion predicate: every main meal
// index 1..meals_per_day must have at least one surviving food entry.
type DailyLogChecker struct{}

func NewDailyLogChecker() *DailyLogChecker {
	return &DailyLogChecker{}
}

func (c *DailyLogChecker) Check(ctx context.Context, repos *repository.NutritionRepos, userID uuid.UUID, date time.Time) (*DailyLogStatus, error) {
	profile, err := repos.Profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ProfileNotFoundError{UserID: userID}
		}
		return nil, err
	}
	if profile.MealsPerDay == nil || *profile.MealsPerDay < 1 {
		return nil, &InvalidMealsPerDayError{UserID: userID}
	}
	mealsPerDay := *profile.MealsPerDay

	entries, err := repos.FoodEntries.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	filled := make(map[int]bool)
	for _, entry := range entries {
		if entry.MealType != models.MealTypeMain || entry.MealIndex == nil {
			continue
		}
		if idx := *entry.MealIndex; idx >= 1 && idx <= mealsPerDay {
			filled[idx] = true
		}
	}

	var filledIndices, missingIndices []int
	for i := 1; i <= mealsPerDay; i++ {
		if filled[i] {
			filledIndices = append(filledIndices, i)
		} else {
			missingIndices = append(missingIndices, i)
		}
	}
	sort.Ints(filledIndices)
	sort.Ints(missingIndices)

	return &DailyLogStatus{
		UserID:         userID,
		Date:           models.NormalizeDate(date),
		MealsPerDay:    mealsPerDay,
		IsCompleted:    len(missingIndices) == 0,
		FilledIndices:  filledIndices,
		MissingIndices: missingIndices,
	}, nil
}

// DailyLogService exposes the completion check as a standalone read
// path for the API.
type DailyLogService struct {
	uow     repository.NutritionUnitOfWork
	checker *DailyLogChecker
}

func NewDailyLogService(uow repository.NutritionUnitOfWork, checker *DailyLogChecker) *DailyLogService {
	return &DailyLogService{uow: uow, checker: checker}
}

func (s *DailyLogService) Status(ctx context.Context, userID uuid.UUID, date time.Time) (*DailyLogStatus, error) {
	var status *DailyLogStatus
	err := s.uow.Do(ctx, func(repos *repository.NutritionRepos) error {
		var err error
		status, err = s.checker.Check(ctx, repos, userID, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

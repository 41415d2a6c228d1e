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

// DailyReportService builds the narrative daily review. A report is
// written once per (user, date); the store's unique index settles races
// between concurrent builders.
type DailyReportService struct {
	uow       repository.NutritionUnitOfWork
	gate      *PlanGate
	checker   *DailyLogChecker
	ensurer   *TargetSnapshotEnsurer
	daily     *DailyNutritionService
	generator ReportGenerator
	clock     Clock
}

func NewDailyReportService(
	uow repository.NutritionUnitOfWork,
	gate *PlanGate,
	checker *DailyLogChecker,
	ensurer *TargetSnapshotEnsurer,
	daily *DailyNutritionService,
	generator ReportGenerator,
	clock Clock,
) *DailyReportService {
	return &DailyReportService{
		uow:       uow,
		gate:      gate,
		checker:   checker,
		ensurer:   ensurer,
		daily:     daily,
		generator: generator,
		clock:     clock,
	}
}

func (s *DailyReportService) Generate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyNutritionReport, error) {
	day := models.NormalizeDate(date)

	var report *models.DailyNutritionReport
	err := s.uow.Do(ctx, func(repos *repository.NutritionRepos) error {
		if err := s.gate.EnsurePremium(ctx, repos.Users, userID); err != nil {
			return err
		}

		status, err := s.checker.Check(ctx, repos, userID, day)
		if err != nil {
			return err
		}
		if !status.IsCompleted {
			return &DailyLogNotCompletedError{MissingIndices: status.MissingIndices}
		}

		if _, err := repos.Reports.FindByUserAndDate(ctx, userID, day); err == nil {
			return &ReportAlreadyExistsError{UserID: userID, Date: day}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		profile, err := repos.Profiles.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ProfileNotFoundError{UserID: userID}
			}
			return err
		}

		snapshot, err := s.ensurer.Ensure(ctx, repos, userID, day)
		if err != nil {
			return err
		}

		dailySummary, err := s.daily.Aggregate(ctx, repos, userID, day)
		if err != nil {
			return err
		}

		mealSummaries, err := repos.MealSummaries.FindAllByUserAndDate(ctx, userID, day)
		if err != nil {
			return err
		}

		generated, err := s.generator.GenerateDailyReport(ctx, &ReportInput{
			UserID:        userID,
			Date:          day,
			Profile:       profile,
			Snapshot:      snapshot,
			DailySummary:  dailySummary,
			MealSummaries: mealSummaries,
		})
		if err != nil {
			return &ReportGenerationFailedError{UserID: userID, Date: day, Cause: err}
		}

		report = &models.DailyNutritionReport{
			ID:                uuid.New(),
			CreatedAt:         s.clock.Now(),
			UserID:            userID,
			Date:              day,
			Summary:           generated.Summary,
			GoodPoints:        generated.GoodPoints,
			ImprovementPoints: generated.ImprovementPoints,
			TomorrowFocus:     generated.TomorrowFocus,
		}
		if err := repos.Reports.Create(ctx, report); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &ReportAlreadyExistsError{UserID: userID, Date: day}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Get returns the stored report for the date, or gorm.ErrRecordNotFound.
func (s *DailyReportService) Get(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyNutritionReport, error) {
	var report *models.DailyNutritionReport
	err := s.uow.Do(ctx, func(repos *repository.NutritionRepos) error {
		var err error
		report, err = repos.Reports.FindByUserAndDate(ctx, userID, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

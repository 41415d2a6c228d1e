package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DomainError is implemented by every pipeline error so the HTTP layer
// can branch on a stable code instead of sniffing messages.
type DomainError interface {
	error
	Code() string
}

type InvalidMealTypeError struct {
	Value string
}

func (e *InvalidMealTypeError) Error() string {
	return fmt.Sprintf("invalid meal type: %q", e.Value)
}
func (e *InvalidMealTypeError) Code() string { return "INVALID_MEAL_TYPE" }

type InvalidMealIndexError struct {
	Reason string
}

func (e *InvalidMealIndexError) Error() string {
	return "invalid meal index: " + e.Reason
}
func (e *InvalidMealIndexError) Code() string { return "INVALID_MEAL_INDEX" }

type InvalidMealsPerDayError struct {
	UserID uuid.UUID
}

func (e *InvalidMealsPerDayError) Error() string {
	return fmt.Sprintf("user %s has no usable meals_per_day on their profile", e.UserID)
}
func (e *InvalidMealsPerDayError) Code() string { return "INVALID_MEALS_PER_DAY" }

type ProfileNotFoundError struct {
	UserID uuid.UUID
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile not found for user %s", e.UserID)
}
func (e *ProfileNotFoundError) Code() string { return "DAILY_LOG_PROFILE_NOT_FOUND" }

type UserNotFoundError struct {
	UserID uuid.UUID
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.UserID)
}
func (e *UserNotFoundError) Code() string { return "USER_NOT_FOUND" }

type PremiumRequiredError struct {
	UserID uuid.UUID
}

func (e *PremiumRequiredError) Error() string {
	return fmt.Sprintf("user %s is not on a trial or paid plan", e.UserID)
}
func (e *PremiumRequiredError) Code() string { return "PREMIUM_FEATURE_REQUIRED" }

type NoActiveTargetError struct {
	UserID uuid.UUID
}

func (e *NoActiveTargetError) Error() string {
	return fmt.Sprintf("no active nutrition target for user %s", e.UserID)
}
func (e *NoActiveTargetError) Code() string { return "NO_ACTIVE_TARGET" }

type DailyLogNotCompletedError struct {
	MissingIndices []int
}

func (e *DailyLogNotCompletedError) Error() string {
	return fmt.Sprintf("daily log is not completed, missing main meal indices %v", e.MissingIndices)
}
func (e *DailyLogNotCompletedError) Code() string { return "DAILY_LOG_NOT_COMPLETED" }

type ReportAlreadyExistsError struct {
	UserID uuid.UUID
	Date   time.Time
}

func (e *ReportAlreadyExistsError) Error() string {
	return fmt.Sprintf("daily report already exists for user %s on %s", e.UserID, e.Date.Format("2006-01-02"))
}
func (e *ReportAlreadyExistsError) Code() string { return "DAILY_NUTRITION_REPORT_ALREADY_EXISTS" }

type NotEnoughDailyReportsError struct {
	Have int
	Need int
}

func (e *NotEnoughDailyReportsError) Error() string {
	return fmt.Sprintf("need %d daily reports for a recommendation, have %d", e.Need, e.Have)
}
func (e *NotEnoughDailyReportsError) Code() string { return "NOT_ENOUGH_DAILY_REPORTS" }

type RecommendationCooldownError struct {
	RemainingMinutes int
}

func (e *RecommendationCooldownError) Error() string {
	return fmt.Sprintf("recommendation cooldown active, %d minutes remaining", e.RemainingMinutes)
}
func (e *RecommendationCooldownError) Code() string { return "MEAL_RECOMMENDATION_COOLDOWN" }

type RecommendationDailyLimitError struct {
	CurrentCount int
	Limit        int
}

func (e *RecommendationDailyLimitError) Error() string {
	return fmt.Sprintf("daily recommendation limit reached (%d/%d)", e.CurrentCount, e.Limit)
}
func (e *RecommendationDailyLimitError) Code() string { return "MEAL_RECOMMENDATION_DAILY_LIMIT" }

type EstimationFailedError struct {
	UserID   uuid.UUID
	Date     time.Time
	MealType string
	Cause    error
}

func (e *EstimationFailedError) Error() string {
	return fmt.Sprintf("nutrition estimation failed for user %s on %s (%s): %v",
		e.UserID, e.Date.Format("2006-01-02"), e.MealType, e.Cause)
}
func (e *EstimationFailedError) Code() string  { return "NUTRITION_ESTIMATION_FAILED" }
func (e *EstimationFailedError) Unwrap() error { return e.Cause }

type ReportGenerationFailedError struct {
	UserID uuid.UUID
	Date   time.Time
	Cause  error
}

func (e *ReportGenerationFailedError) Error() string {
	return fmt.Sprintf("daily report generation failed for user %s on %s: %v",
		e.UserID, e.Date.Format("2006-01-02"), e.Cause)
}
func (e *ReportGenerationFailedError) Code() string  { return "DAILY_REPORT_GENERATION_FAILED" }
func (e *ReportGenerationFailedError) Unwrap() error { return e.Cause }

type RecommendationGenerationFailedError struct {
	UserID uuid.UUID
	Cause  error
}

func (e *RecommendationGenerationFailedError) Error() string {
	return fmt.Sprintf("meal recommendation generation failed for user %s: %v", e.UserID, e.Cause)
}
func (e *RecommendationGenerationFailedError) Code() string {
	return "MEAL_RECOMMENDATION_GENERATION_FAILED"
}
func (e *RecommendationGenerationFailedError) Unwrap() error { return e.Cause }

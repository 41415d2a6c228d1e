package usecase_test

import (
	"context"
	"testing"
	"time"

	"nutrilog/internal/mocks"
	"nutrilog/internal/models"
	. "nutrilog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestTargetSnapshotEnsurer_ReturnsExistingSnapshot(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repos := mocks.NewMockRepos()

	existing := &models.DailyTargetSnapshot{
		ID:     uuid.New(),
		UserID: userID,
		Date:   date,
	}
	repos.Snapshots.On("FindByUserAndDate", mock.Anything, userID, date).Return(existing, nil)

	ensurer := NewTargetSnapshotEnsurer(&mocks.FixedClock{Instant: date})
	snapshot, err := ensurer.Ensure(context.Background(), repos.Repos(), userID, date)

	assert.NoError(t, err)
	assert.Equal(t, existing.ID, snapshot.ID)
	repos.Targets.AssertNotCalled(t, "FindActiveByUserID", mock.Anything, userID)
	repos.Snapshots.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTargetSnapshotEnsurer_CopiesActiveTargetNutrients(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := date.Add(9 * time.Hour)
	repos := mocks.NewMockRepos()

	target := &models.TargetDefinition{
		ID:     uuid.New(),
		UserID: userID,
		Nutrients: []models.TargetNutrient{
			{Code: models.NutrientProtein, Value: 90, Unit: "g", Source: models.NutrientSourceManual},
			{Code: models.NutrientFiber, Value: 25, Unit: "g", Source: models.NutrientSourceManual},
		},
	}

	repos.Snapshots.On("FindByUserAndDate", mock.Anything, userID, date).Return(nil, gorm.ErrRecordNotFound)
	repos.Targets.On("FindActiveByUserID", mock.Anything, userID).Return(target, nil)
	repos.Snapshots.On("Create", mock.Anything, mock.AnythingOfType("*models.DailyTargetSnapshot")).Return(nil)

	ensurer := NewTargetSnapshotEnsurer(&mocks.FixedClock{Instant: now})
	snapshot, err := ensurer.Ensure(context.Background(), repos.Repos(), userID, date)

	assert.NoError(t, err)
	assert.Equal(t, userID, snapshot.UserID)
	assert.Equal(t, date, snapshot.Date)
	assert.Equal(t, target.ID, snapshot.TargetID)
	assert.Equal(t, now, snapshot.CreatedAt)
	assert.Len(t, snapshot.Nutrients, 2)
	assert.Equal(t, models.NutrientProtein, snapshot.Nutrients[0].Code)
	assert.Equal(t, 90.0, snapshot.Nutrients[0].Value)
	repos.Snapshots.AssertExpectations(t)
}

func TestTargetSnapshotEnsurer_NoActiveTarget(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repos := mocks.NewMockRepos()

	repos.Snapshots.On("FindByUserAndDate", mock.Anything, userID, date).Return(nil, gorm.ErrRecordNotFound)
	repos.Targets.On("FindActiveByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	ensurer := NewTargetSnapshotEnsurer(&mocks.FixedClock{Instant: date})
	_, err := ensurer.Ensure(context.Background(), repos.Repos(), userID, date)

	var noTarget *NoActiveTargetError
	assert.ErrorAs(t, err, &noTarget)
}

func TestTargetSnapshotEnsurer_LosingInsertRereadsWinner(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repos := mocks.NewMockRepos()

	target := &models.TargetDefinition{ID: uuid.New(), UserID: userID}
	winner := &models.DailyTargetSnapshot{ID: uuid.New(), UserID: userID, Date: date}

	repos.Snapshots.On("FindByUserAndDate", mock.Anything, userID, date).Return(nil, gorm.ErrRecordNotFound).Once()
	repos.Targets.On("FindActiveByUserID", mock.Anything, userID).Return(target, nil)
	repos.Snapshots.On("Create", mock.Anything, mock.AnythingOfType("*models.DailyTargetSnapshot")).Return(gorm.ErrDuplicatedKey)
	repos.Snapshots.On("FindByUserAndDate", mock.Anything, userID, date).Return(winner, nil).Once()

	ensurer := NewTargetSnapshotEnsurer(&mocks.FixedClock{Instant: date})
	snapshot, err := ensurer.Ensure(context.Background(), repos.Repos(), userID, date)

	assert.NoError(t, err)
	assert.Equal(t, winner.ID, snapshot.ID)
}

package mocks

import (
	"context"
	"time"

	"fittrack/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUserID(userID uint) (*models.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Patch(userID uint, data map[string]interface{}) error {
	args := m.Called(userID, data)
	return args.Error(0)
}

func (m *MockProfileRepository) Delete(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// Shared MockMealRepository
type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) Create(meal *models.Meal) error {
	args := m.Called(meal)
	return args.Error(0)
}

func (m *MockMealRepository) FindByID(id uint) (*models.Meal, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealRepository) FindByUserIDAndDate(userID uint, date time.Time) ([]models.Meal, error) {
	args := m.Called(userID, date)
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Meal, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMealRepository) CountByUserID(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMealRepository) ExistsForDate(userID uint, date time.Time) (bool, error) {
	args := m.Called(userID, date)
	return args.Bool(0), args.Error(1)
}

// Shared MockExerciseRepository
type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) Create(exercise *models.Exercise) error {
	args := m.Called(exercise)
	return args.Error(0)
}

func (m *MockExerciseRepository) FindByID(id uint) (*models.Exercise, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) FindByUserIDAndDate(userID uint, date time.Time) ([]models.Exercise, error) {
	args := m.Called(userID, date)
	return args.Get(0).([]models.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Exercise, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockExerciseRepository) CountByUserID(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExerciseRepository) SumDurationByUserID(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExerciseRepository) ExistsForDate(userID uint, date time.Time) (bool, error) {
	args := m.Called(userID, date)
	return args.Bool(0), args.Error(1)
}

// Shared MockSleepRepository
type MockSleepRepository struct {
	mock.Mock
}

func (m *MockSleepRepository) Upsert(log *models.SleepLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *MockSleepRepository) FindByUserIDAndDate(userID uint, date time.Time) (*models.SleepLog, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SleepLog), args.Error(1)
}

func (m *MockSleepRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.SleepLog, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.SleepLog), args.Error(1)
}

func (m *MockSleepRepository) Delete(userID uint, date time.Time) error {
	args := m.Called(userID, date)
	return args.Error(0)
}

func (m *MockSleepRepository) ExistsForDate(userID uint, date time.Time) (bool, error) {
	args := m.Called(userID, date)
	return args.Bool(0), args.Error(1)
}

// Shared MockAchievementRepository
type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) FindAll() ([]models.Achievement, error) {
	args := m.Called()
	return args.Get(0).([]models.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) FindByID(id uint) (*models.Achievement, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Achievement), args.Error(1)
}

// Shared MockUserAchievementRepository
type MockUserAchievementRepository struct {
	mock.Mock
}

func (m *MockUserAchievementRepository) FindByUserID(userID uint) ([]models.UserAchievement, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.UserAchievement), args.Error(1)
}

func (m *MockUserAchievementRepository) UnlockedIDs(userID uint) (map[uint]bool, error) {
	args := m.Called(userID)
	return args.Get(0).(map[uint]bool), args.Error(1)
}

func (m *MockUserAchievementRepository) Unlock(userID, achievementID uint) (bool, error) {
	args := m.Called(userID, achievementID)
	return args.Bool(0), args.Error(1)
}

// MockNotifier records achievement evaluation requests from controllers.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Enqueue(userID uint) {
	m.Called(userID)
}

// MockSummaryInvalidator records coach summary cache drops from controllers.
type MockSummaryInvalidator struct {
	mock.Mock
}

func (m *MockSummaryInvalidator) InvalidateSummary(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

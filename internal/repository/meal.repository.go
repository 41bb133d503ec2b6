package repository

import (
	"time"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

type MealRepository interface {
	Create(meal *models.Meal) error
	FindByID(id uint) (*models.Meal, error)
	FindByUserIDAndDate(userID uint, date time.Time) ([]models.Meal, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Meal, error)
	Delete(id uint) error
	CountByUserID(userID uint) (int64, error)
	ExistsForDate(userID uint, date time.Time) (bool, error)
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db}
}

func (r *mealRepository) Create(meal *models.Meal) error {
	return r.db.Create(meal).Error
}

func (r *mealRepository) FindByID(id uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.First(&meal, id).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) FindByUserIDAndDate(userID uint, date time.Time) ([]models.Meal, error) {
	start := dayStart(date)
	return r.FindByUserIDAndDateRange(userID, start, start.AddDate(0, 0, 1))
}

func (r *mealRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, startDate, endDate).
		Order("consumed_at DESC").
		Find(&meals).Error
	return meals, err
}

func (r *mealRepository) Delete(id uint) error {
	return r.db.Delete(&models.Meal{}, id).Error
}

func (r *mealRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Meal{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *mealRepository) ExistsForDate(userID uint, date time.Time) (bool, error) {
	start := dayStart(date)
	var count int64
	err := r.db.Model(&models.Meal{}).
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, start.AddDate(0, 0, 1)).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

// dayStart truncates a timestamp to local midnight. Log tables store
// timestamps; "for date" queries always mean the local calendar day.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

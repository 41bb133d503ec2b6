package repository

import (
	"time"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

type ExerciseRepository interface {
	Create(exercise *models.Exercise) error
	FindByID(id uint) (*models.Exercise, error)
	FindByUserIDAndDate(userID uint, date time.Time) ([]models.Exercise, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Exercise, error)
	Delete(id uint) error
	CountByUserID(userID uint) (int64, error)
	SumDurationByUserID(userID uint) (int64, error)
	ExistsForDate(userID uint, date time.Time) (bool, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db}
}

func (r *exerciseRepository) Create(exercise *models.Exercise) error {
	return r.db.Create(exercise).Error
}

func (r *exerciseRepository) FindByID(id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	err := r.db.First(&exercise, id).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) FindByUserIDAndDate(userID uint, date time.Time) ([]models.Exercise, error) {
	start := dayStart(date)
	return r.FindByUserIDAndDateRange(userID, start, start.AddDate(0, 0, 1))
}

func (r *exerciseRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.Where("user_id = ? AND exercise_date >= ? AND exercise_date < ?", userID, startDate, endDate).
		Order("exercise_date DESC").
		Find(&exercises).Error
	return exercises, err
}

func (r *exerciseRepository) Delete(id uint) error {
	return r.db.Delete(&models.Exercise{}, id).Error
}

func (r *exerciseRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Exercise{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *exerciseRepository) SumDurationByUserID(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Exercise{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error
	return total, err
}

func (r *exerciseRepository) ExistsForDate(userID uint, date time.Time) (bool, error) {
	start := dayStart(date)
	var count int64
	err := r.db.Model(&models.Exercise{}).
		Where("user_id = ? AND exercise_date >= ? AND exercise_date < ?", userID, start, start.AddDate(0, 0, 1)).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

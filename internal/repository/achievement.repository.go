package repository

import (
	"fittrack/internal/models"

	"gorm.io/gorm"
)

type AchievementRepository interface {
	FindAll() ([]models.Achievement, error)
	FindByID(id uint) (*models.Achievement, error)
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db}
}

func (r *achievementRepository) FindAll() ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.db.Order("created_at").Find(&achievements).Error
	return achievements, err
}

func (r *achievementRepository) FindByID(id uint) (*models.Achievement, error) {
	var achievement models.Achievement
	err := r.db.First(&achievement, id).Error
	if err != nil {
		return nil, err
	}
	return &achievement, nil
}

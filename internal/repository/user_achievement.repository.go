package repository

import (
	"time"

	"fittrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserAchievementRepository interface {
	FindByUserID(userID uint) ([]models.UserAchievement, error)
	UnlockedIDs(userID uint) (map[uint]bool, error)
	Unlock(userID, achievementID uint) (bool, error)
}

type userAchievementRepository struct {
	db *gorm.DB
}

func NewUserAchievementRepository(db *gorm.DB) UserAchievementRepository {
	return &userAchievementRepository{db}
}

func (r *userAchievementRepository) FindByUserID(userID uint) ([]models.UserAchievement, error) {
	var unlocks []models.UserAchievement
	err := r.db.Where("user_id = ?", userID).Order("unlocked_at").Find(&unlocks).Error
	return unlocks, err
}

func (r *userAchievementRepository) UnlockedIDs(userID uint) (map[uint]bool, error) {
	unlocks, err := r.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	ids := make(map[uint]bool, len(unlocks))
	for _, u := range unlocks {
		ids[u.AchievementID] = true
	}
	return ids, nil
}

// Unlock records the (user, achievement) pair at most once. Concurrent
// duplicate attempts hit the unique index and become no-ops; the return value
// reports whether this call actually inserted the row.
func (r *userAchievementRepository) Unlock(userID, achievementID uint) (bool, error) {
	unlock := models.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now(),
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&unlock)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

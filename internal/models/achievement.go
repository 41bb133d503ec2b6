package models

import "time"

// Achievement is a catalog entry. CriteriaValue is the unlock threshold and
// is ignored for the first_meal and full_day_log criteria.
type Achievement struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	Name          string    `gorm:"uniqueIndex" json:"name" example:"First Bite"`
	Description   string    `json:"description" example:"Log your first meal"`
	Icon          string    `json:"icon" example:"Utensils"`
	CriteriaType  string    `json:"criteria_type" example:"first_meal"`
	CriteriaValue int       `json:"criteria_value" example:"0"`
}

// UserAchievement pairs a user with an unlocked achievement. The composite
// unique index makes unlocking idempotent at the store level.
type UserAchievement struct {
	ID            uint        `gorm:"primaryKey" json:"id" example:"1"`
	UserID        uint        `gorm:"uniqueIndex:idx_user_achievement" json:"user_id" example:"1"`
	User          User        `gorm:"foreignKey:UserID" json:"-"`
	AchievementID uint        `gorm:"uniqueIndex:idx_user_achievement" json:"achievement_id" example:"1"`
	Achievement   Achievement `gorm:"foreignKey:AchievementID" json:"-"`
	UnlockedAt    time.Time   `json:"unlocked_at" example:"2023-01-01T12:00:00Z"`
}

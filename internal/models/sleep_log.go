package models

import (
	"time"

	"gorm.io/gorm"
)

// SleepLog records one night of sleep. At most one row exists per user per
// date; writes for an existing date update the row instead of duplicating it.
type SleepLog struct {
	ID           uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID       uint           `gorm:"uniqueIndex:idx_sleep_user_date" json:"user_id" example:"1"`
	User         User           `gorm:"foreignKey:UserID" json:"-"`
	HoursSlept   float64        `json:"hours_slept" example:"7.5"`
	SleepQuality string         `json:"sleep_quality" example:"good"`
	SleepDate    time.Time      `gorm:"uniqueIndex:idx_sleep_user_date" json:"sleep_date" example:"2023-01-01T00:00:00Z"`
}

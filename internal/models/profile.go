package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile holds the biometric data used to compute the daily calorie goal.
// Optional fields are pointers so "not set" is distinguishable from zero.
type Profile struct {
	ID               uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt        time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt        time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID           uint           `gorm:"unique" json:"user_id" example:"1"`
	Name             string         `json:"name" example:"Jane Doe"`
	Age              *int           `json:"age" example:"30"`
	Gender           *string        `json:"gender" example:"female"`
	HeightCm         *float64       `json:"height" example:"175"`
	WeightKg         *float64       `json:"weight" example:"70"`
	ActivityLevel    *string        `json:"activity_level" example:"moderate"`
	Goal             *string        `json:"goal" example:"lose"`
	DailyCalorieGoal int            `json:"daily_calorie_goal" example:"2094"`
}

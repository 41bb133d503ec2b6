package models

import (
	"time"

	"gorm.io/gorm"
)

type Exercise struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID        uint           `gorm:"index" json:"user_id" example:"1"`
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	ExerciseName  string         `json:"exercise_name" binding:"required" example:"Running"`
	ExerciseType  string         `json:"exercise_type" example:"cardio"`
	Duration      int            `json:"duration" example:"30"`
	CaloriesBurnt int            `json:"calories_burnt" example:"280"`
	ExerciseDate  time.Time      `json:"exercise_date" example:"2023-01-01T00:00:00Z"`
	Notes         string         `json:"notes" example:"Felt great"`
}

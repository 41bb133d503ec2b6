package models

import (
	"time"

	"gorm.io/gorm"
)

type Meal struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID     uint           `gorm:"index" json:"user_id" example:"1"`
	User       User           `gorm:"foreignKey:UserID" json:"-"`
	MealName   string         `json:"meal_name" binding:"required" example:"Oatmeal with berries"`
	MealType   string         `json:"meal_type" example:"breakfast"`
	Calories   float64        `json:"calories" example:"350"`
	Protein    float64        `json:"protein" example:"12"`
	Carbs      float64        `json:"carbs" example:"55"`
	Fat        float64        `json:"fat" example:"8"`
	ConsumedAt time.Time      `json:"consumed_at" example:"2023-01-01T08:30:00Z"`
	Notes      string         `json:"notes" example:"Post workout"`
}

package utils

import (
	"fmt"
	"log"

	"fittrack/internal/achievements"
	"fittrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// achievementCatalog is the badge set shipped with the app. Seeding is
// idempotent: re-running updates descriptions and thresholds in place by name.
var achievementCatalog = []models.Achievement{
	{
		Name:          "First Bite",
		Description:   "Log your first meal",
		Icon:          "Utensils",
		CriteriaType:  achievements.CriteriaFirstMeal,
		CriteriaValue: 0,
	},
	{
		Name:          "Meal Tracker",
		Description:   "Log 25 meals",
		Icon:          "Target",
		CriteriaType:  achievements.CriteriaTotalMeals,
		CriteriaValue: 25,
	},
	{
		Name:          "Nutrition Veteran",
		Description:   "Log 100 meals",
		Icon:          "Crown",
		CriteriaType:  achievements.CriteriaTotalMeals,
		CriteriaValue: 100,
	},
	{
		Name:          "Getting Moving",
		Description:   "Complete 5 workouts",
		Icon:          "Dumbbell",
		CriteriaType:  achievements.CriteriaWorkoutsCompleted,
		CriteriaValue: 5,
	},
	{
		Name:          "Workout Warrior",
		Description:   "Complete 30 workouts",
		Icon:          "Trophy",
		CriteriaType:  achievements.CriteriaWorkoutsCompleted,
		CriteriaValue: 30,
	},
	{
		Name:          "Active Hours",
		Description:   "Accumulate 500 minutes of exercise",
		Icon:          "Flame",
		CriteriaType:  achievements.CriteriaTotalExerciseMinutes,
		CriteriaValue: 500,
	},
	{
		Name:          "Endurance Master",
		Description:   "Accumulate 2000 minutes of exercise",
		Icon:          "Award",
		CriteriaType:  achievements.CriteriaTotalExerciseMinutes,
		CriteriaValue: 2000,
	},
	{
		Name:          "Full Circle",
		Description:   "Log a meal, a workout and sleep on the same day",
		Icon:          "Moon",
		CriteriaType:  achievements.CriteriaFullDayLog,
		CriteriaValue: 0,
	},
}

// SeedAchievements writes the badge catalog. Names are the upsert key so ids
// stay stable across runs and unlock rows keep pointing at the right badge.
func SeedAchievements(db *gorm.DB) error {
	for _, a := range achievementCatalog {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "icon", "criteria_type", "criteria_value"}),
		}).Create(&a).Error
		if err != nil {
			return fmt.Errorf("failed to seed achievement %q: %v", a.Name, err)
		}
	}
	log.Printf("Seeded %d achievements", len(achievementCatalog))
	return nil
}

// SeedDemoUsers creates numbered demo accounts for local development.
func SeedDemoUsers(db *gorm.DB, count int) error {
	for i := 1; i <= count; i++ {
		user := models.User{
			Name:  fmt.Sprintf("Demo User %d", i),
			Email: fmt.Sprintf("demo%d@example.com", i),
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&user).Error
		if err != nil {
			return fmt.Errorf("failed to seed demo user %d: %v", i, err)
		}
	}
	log.Printf("Seeded %d demo users", count)
	return nil
}

// CleanupDemoUsers removes the demo accounts created by SeedDemoUsers.
func CleanupDemoUsers(db *gorm.DB) error {
	result := db.Where("email LIKE ?", "demo%@example.com").Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("failed to cleanup demo users: %v", result.Error)
	}
	log.Printf("Deleted %d demo users", result.RowsAffected)
	return nil
}

// AchievementCount reports how many catalog entries exist in the store.
func AchievementCount(db *gorm.DB) (int64, error) {
	var count int64
	result := db.Model(&models.Achievement{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count achievements: %v", result.Error)
	}
	return count, nil
}

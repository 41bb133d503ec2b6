package database

import (
	"log"

	"fittrack/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Meal{},
		&models.Exercise{},
		&models.SleepLog{},
		&models.Achievement{},
		&models.UserAchievement{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

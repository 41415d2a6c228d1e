package database

import (
	"log"

	"nutrilog/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.FoodEntry{},
		&models.TargetDefinition{},
		&models.TargetNutrient{},
		&models.DailyTargetSnapshot{},
		&models.SnapshotNutrient{},
		&models.MealNutritionSummary{},
		&models.MealSummaryNutrient{},
		&models.DailyNutritionSummary{},
		&models.DailySummaryNutrient{},
		&models.DailyNutritionReport{},
		&models.MealRecommendation{},
		&models.RecommendedMeal{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

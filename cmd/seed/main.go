package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"nutrilog/database"
	"nutrilog/internal/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	email := flag.String("email", "demo@nutrilog.dev", "email of the demo user")
	password := flag.String("password", "demo-password", "password of the demo user")
	days := flag.Int("days", 3, "number of past days to fill with food entries")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	db := database.DB

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Name:     "Demo User",
		Email:    *email,
		Password: string(hashed),
		Plan:     models.PlanPaid,
		IsActive: true,
	}
	if err := db.Where("email = ?", *email).FirstOrCreate(&user).Error; err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}
	log.Printf("Seeded user %s (%s)", user.Email, user.ID)

	mealsPerDay := 3
	height := 172.0
	weight := 68.0
	birthdate := time.Date(1994, 6, 15, 0, 0, 0, 0, time.UTC)
	profile := models.UserProfile{
		UserID:      user.ID,
		Sex:         "male",
		Birthdate:   &birthdate,
		HeightCm:    &height,
		WeightKg:    &weight,
		MealsPerDay: &mealsPerDay,
	}
	if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&profile).Error; err != nil {
		log.Fatalf("Failed to seed profile: %v", err)
	}
	log.Printf("Seeded profile for %s (meals per day: %d)", user.Email, mealsPerDay)

	var targetCount int64
	if err := db.Model(&models.TargetDefinition{}).Where("user_id = ?", user.ID).Count(&targetCount).Error; err != nil {
		log.Fatalf("Failed to count targets: %v", err)
	}
	if targetCount == 0 {
		nutrients := make([]models.TargetNutrient, 0, len(models.AllNutrientCodes))
		for _, code := range models.AllNutrientCodes {
			nutrients = append(nutrients, models.TargetNutrient{
				Code:   code,
				Value:  defaultTargetValue(code),
				Unit:   models.CanonicalNutrientUnits[code],
				Source: models.NutrientSourceManual,
			})
		}
		rationale := "Maintenance targets for a moderately active adult"
		target := models.TargetDefinition{
			UserID:        user.ID,
			Title:         "Maintenance",
			GoalType:      "maintain",
			ActivityLevel: "moderate",
			IsActive:      true,
			Rationale:     &rationale,
			Nutrients:     nutrients,
		}
		if err := db.Create(&target).Error; err != nil {
			log.Fatalf("Failed to seed target: %v", err)
		}
		log.Printf("Seeded active target %q with %d nutrients", target.Title, len(nutrients))
	}

	today := models.NormalizeDate(time.Now().UTC())
	seeded := 0
	for d := 0; d < *days; d++ {
		date := today.AddDate(0, 0, -d)
		for _, entry := range demoEntries(user.ID, date, mealsPerDay) {
			var existing models.FoodEntry
			err := db.Where("user_id = ? AND date = ? AND name = ?", user.ID, date, entry.Name).First(&existing).Error
			if err == nil {
				continue
			}
			if err := db.Create(&entry).Error; err != nil {
				log.Fatalf("Failed to seed food entry: %v", err)
			}
			seeded++
		}
	}
	log.Printf("Seeded %d food entries across %d days", seeded, *days)

	fmt.Println("Seeding complete")
}

func defaultTargetValue(code models.NutrientCode) float64 {
	switch code {
	case models.NutrientCarbohydrate:
		return 280
	case models.NutrientFat:
		return 70
	case models.NutrientProtein:
		return 90
	case models.NutrientFiber:
		return 25
	case models.NutrientSodium:
		return 2300
	case models.NutrientPotassium:
		return 3500
	case models.NutrientCalcium:
		return 1000
	case models.NutrientIron:
		return 18
	case models.NutrientMagnesium:
		return 400
	case models.NutrientZinc:
		return 11
	case models.NutrientWater:
		return 2000
	default:
		return 100
	}
}

func demoEntries(userID uuid.UUID, date time.Time, mealsPerDay int) []models.FoodEntry {
	names := []string{"Oatmeal with banana", "Grilled chicken bowl", "Salmon with rice"}
	amount := 250.0
	unit := "g"

	entries := make([]models.FoodEntry, 0, mealsPerDay+1)
	for i := 1; i <= mealsPerDay; i++ {
		name := names[(i-1)%len(names)]
		idx := i
		entries = append(entries, models.FoodEntry{
			UserID:      userID,
			Date:        date,
			MealType:    models.MealTypeMain,
			MealIndex:   &idx,
			Name:        name,
			AmountValue: &amount,
			AmountUnit:  &unit,
		})
	}
	serving := 1.0
	entries = append(entries, models.FoodEntry{
		UserID:       userID,
		Date:         date,
		MealType:     models.MealTypeSnack,
		Name:         "Greek yogurt",
		ServingCount: &serving,
	})
	return entries
}

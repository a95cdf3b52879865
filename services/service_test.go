package services

import (
	"testing"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database. A single connection is
// enforced so every test sees one consistent store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, calorieGoal float64) *models.User {
	t.Helper()
	user := &models.User{
		Username:       "asha",
		Email:          "asha@example.com",
		Password:       "hashed",
		Age:            30,
		Gender:         "Female",
		HeightCm:       165,
		WeightKg:       60,
		ActivityLevel:  "Lightly Active",
		FoodPreference: "Vegetarian",
		CalorieGoal:    calorieGoal,
		ProteinGoal:    100,
		CarbGoal:       250,
		FatGoal:        70,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedFood(t *testing.T, db *gorm.DB, name string, calPer100g float64) *models.Food {
	t.Helper()
	food := &models.Food{
		Name:            name,
		Category:        "Grains",
		FoodType:        "Vegetarian",
		CaloriesPer100g: calPer100g,
		ProteinPer100g:  10,
		CarbsPer100g:    20,
		FatPer100g:      5,
		IsActive:        true,
	}
	require.NoError(t, db.Create(food).Error)
	return food
}

func summaryFor(t *testing.T, db *gorm.DB, userID uint, day time.Time) *models.DailySummary {
	t.Helper()
	var s models.DailySummary
	require.NoError(t, db.Where("user_id = ? AND date = ?", userID, models.Day(day)).First(&s).Error)
	return &s
}

var testDay = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

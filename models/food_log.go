package models

import (
	"time"

	"gorm.io/gorm"
)

// Fixed meal-type enumeration.
const (
	MealBreakfast    = "Breakfast"
	MealMidMorning   = "Mid-Morning"
	MealLunch        = "Lunch"
	MealEveningSnack = "Evening Snack"
	MealDinner       = "Dinner"
	MealLateNight    = "Late Night"
)

var MealTypes = []string{
	MealBreakfast,
	MealMidMorning,
	MealLunch,
	MealEveningSnack,
	MealDinner,
	MealLateNight,
}

func ValidMealType(t string) bool {
	for _, m := range MealTypes {
		if m == t {
			return true
		}
	}
	return false
}

// FoodLogEntry is one logged meal. Macros are snapshotted from the food
// at log time and never recomputed when the catalog row changes later.
type FoodLogEntry struct {
	gorm.Model
	UserID        uint `gorm:"index;not null"`
	FoodID        uint `gorm:"index;not null"`
	Food          Food
	QuantityGrams float64 `gorm:"not null"`
	MealType      string  `gorm:"size:20;not null"`

	CaloriesConsumed float64 `gorm:"not null"`
	ProteinConsumed  float64 `gorm:"not null"`
	CarbsConsumed    float64 `gorm:"not null"`
	FatConsumed      float64 `gorm:"not null"`

	DateLogged time.Time `gorm:"type:date;index;not null"` // truncated to YYYY-MM-DD
	TimeLogged time.Time `gorm:"not null"`
	Notes      string    `gorm:"type:text"`
}

// Day truncates t to its calendar day, keyed at UTC midnight. Every
// path that reads or writes a date_logged or summary date must go
// through this: mixing locations would split one calendar day into
// distinct key instants and with it the summary row.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

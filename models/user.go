package models

import (
	"math"

	"gorm.io/gorm"
)

// Fallback targets used when a user never set explicit goals.
const (
	DefaultCalorieGoal = 2000
	DefaultProteinGoal = 50
	DefaultCarbGoal    = 200
	DefaultFatGoal     = 65
)

type User struct {
	gorm.Model
	Username       string `gorm:"uniqueIndex;not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FirstName      string
	LastName       string
	Age            int
	Gender         string  `gorm:"size:10"`
	HeightCm       float64 // cm
	WeightKg       float64 // kg
	ActivityLevel  string  `gorm:"size:20;default:Sedentary"`
	FoodPreference string  `gorm:"size:20;default:Vegetarian"` // Vegetarian | Eggetarian | Non-Vegetarian
	IsDiabetic     bool    `gorm:"not null;default:false"`
	IsAdmin        bool    `gorm:"not null;default:false"`

	// Daily targets. Zero means unset; readers fall back to the defaults.
	CalorieGoal float64
	ProteinGoal float64
	CarbGoal    float64
	FatGoal     float64
}

// GoalOrDefault returns the user's targets, substituting the defaults
// for any goal the user never set.
func (u *User) GoalOrDefault() (calories, protein, carbs, fat float64) {
	calories, protein, carbs, fat = u.CalorieGoal, u.ProteinGoal, u.CarbGoal, u.FatGoal
	if calories <= 0 {
		calories = DefaultCalorieGoal
	}
	if protein <= 0 {
		protein = DefaultProteinGoal
	}
	if carbs <= 0 {
		carbs = DefaultCarbGoal
	}
	if fat <= 0 {
		fat = DefaultFatGoal
	}
	return
}

// BMR uses the Mifflin-St Jeor equation. Height in cm, weight in kg.
func (u *User) BMR() float64 {
	bmr := 10*u.WeightKg + 6.25*u.HeightCm - 5*float64(u.Age)
	if u.Gender == "Male" || u.Gender == "male" {
		return bmr + 5
	}
	return bmr - 161
}

var activityMultipliers = map[string]float64{
	"Sedentary":         1.2,
	"Lightly Active":    1.375,
	"Moderately Active": 1.55,
	"Very Active":       1.725,
	"Extremely Active":  1.9,
}

// TDEE scales BMR by activity level; unknown levels read as Sedentary.
func (u *User) TDEE() float64 {
	m, ok := activityMultipliers[u.ActivityLevel]
	if !ok {
		m = 1.2
	}
	return u.BMR() * m
}

// MacroGoals splits a calorie target 25/45/30 into protein/carb/fat
// grams (protein and carbs at 4 kcal/g, fat at 9 kcal/g).
func (u *User) MacroGoals(calorieGoal float64) (protein, carbs, fat float64) {
	protein = Round1(calorieGoal * 0.25 / 4)
	carbs = Round1(calorieGoal * 0.45 / 4)
	fat = Round1(calorieGoal * 0.30 / 9)
	return
}

func (u *User) BMI() float64 {
	if u.HeightCm <= 0 {
		return 0
	}
	h := u.HeightCm / 100
	return Round1(u.WeightKg / (h * h))
}

func (u *User) BMICategory() string {
	bmi := u.BMI()
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// Round1 rounds to one decimal, the precision nutrition snapshots and
// summary totals are stored at.
func Round1(v float64) float64 { return math.Round(v*10) / 10 }

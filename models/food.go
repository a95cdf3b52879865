package models

import "gorm.io/gorm"

// Food is a catalog entry. Macros are per 100 grams; ServingSizeGrams
// is only a default multiplier hint for the UI. Rows are soft-deleted
// via IsActive so historical log entries keep a valid reference.
type Food struct {
	gorm.Model
	Name             string  `gorm:"size:200;not null"`
	NameHindi        string  `gorm:"size:200"`
	Category         string  `gorm:"size:50;not null"`
	FoodType         string  `gorm:"size:20;not null;default:Vegetarian"` // Vegetarian | Eggetarian | Non-Vegetarian
	CaloriesPer100g  float64 `gorm:"not null"`
	ProteinPer100g   float64 `gorm:"not null"`
	CarbsPer100g     float64 `gorm:"not null"`
	FatPer100g       float64 `gorm:"not null"`
	FiberPer100g     float64 `gorm:"not null;default:0"`
	GIIndex          *int    // glycemic index, nil when unknown
	Description      string  `gorm:"type:text"`
	ServingSizeGrams float64 `gorm:"default:100"`
	IsActive         bool    `gorm:"not null;default:true"`
}

// Nutrition holds macro amounts for a concrete quantity of a food.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// NutritionFor scales the per-100g macros to quantityGrams, rounded to
// one decimal. These are the values snapshotted into log entries.
func (f *Food) NutritionFor(quantityGrams float64) Nutrition {
	m := quantityGrams / 100
	return Nutrition{
		Calories: Round1(f.CaloriesPer100g * m),
		Protein:  Round1(f.ProteinPer100g * m),
		Carbs:    Round1(f.CarbsPer100g * m),
		Fat:      Round1(f.FatPer100g * m),
		Fiber:    Round1(f.FiberPer100g * m),
	}
}

// GICategory buckets the glycemic index: Low <= 55 < Medium <= 70 < High.
func (f *Food) GICategory() string {
	if f.GIIndex == nil {
		return "Unknown"
	}
	switch {
	case *f.GIIndex <= 55:
		return "Low"
	case *f.GIIndex <= 70:
		return "Medium"
	default:
		return "High"
	}
}

// SuitableForDiabetic treats unknown GI as safe.
func (f *Food) SuitableForDiabetic() bool {
	return f.GIIndex == nil || *f.GIIndex <= 55
}

// SuitableFor checks the food against a user's preference and diabetic flag.
func (f *Food) SuitableFor(u *User) bool {
	if u.FoodPreference == "Vegetarian" && f.FoodType != "Vegetarian" {
		return false
	}
	if u.FoodPreference == "Eggetarian" && f.FoodType == "Non-Vegetarian" {
		return false
	}
	if u.IsDiabetic && !f.SuitableForDiabetic() {
		return false
	}
	return true
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// DailySummary is the per-user per-day rollup the dashboard reads.
//
// Grain: (user_id, date), enforced by a unique index. Rows are derived
// data: they are created and replaced only by the summary recompute
// that runs with every log insert/update/delete, and can always be
// rebuilt from food_log_entries. Goal columns are copied from the
// user's current goals at the time of the last recompute.
type DailySummary struct {
	gorm.Model
	UserID uint      `gorm:"not null;uniqueIndex:uidx_summary_user_date"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:uidx_summary_user_date"`

	TotalCalories float64 `gorm:"not null;default:0"`
	TotalProtein  float64 `gorm:"not null;default:0"`
	TotalCarbs    float64 `gorm:"not null;default:0"`
	TotalFat      float64 `gorm:"not null;default:0"`

	CalorieGoal float64 `gorm:"not null"`
	ProteinGoal float64 `gorm:"not null"`
	CarbGoal    float64 `gorm:"not null"`
	FatGoal     float64 `gorm:"not null"`

	MealsLogged int `gorm:"not null;default:0"`
}

package services

import (
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SummaryService keeps exactly one DailySummary per (user, date) in
// sync with the live set of food log entries.
type SummaryService struct{}

func NewSummaryService() *SummaryService { return &SummaryService{} }

// Recompute rebuilds the summary for (userID, day) from scratch and
// upserts it. It must be called on the same transaction as the log
// mutation that triggered it, so the log and its summary commit or
// roll back together.
//
// Totals are always recomputed as full sums over the source rows, not
// adjusted incrementally; rerunning a recompute is idempotent. Goal
// columns are refreshed from the user's current goals on every run.
func (s *SummaryService) Recompute(tx *gorm.DB, userID uint, day time.Time) error {
	day = models.Day(day)

	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return err
	}
	calGoal, protGoal, carbGoal, fatGoal := user.GoalOrDefault()

	var entries []models.FoodLogEntry
	if err := tx.
		Where("user_id = ? AND date_logged = ?", userID, day).
		Find(&entries).Error; err != nil {
		return err
	}

	var cals, prot, carbs, fat float64
	for _, e := range entries {
		cals += e.CaloriesConsumed
		prot += e.ProteinConsumed
		carbs += e.CarbsConsumed
		fat += e.FatConsumed
	}

	summary := models.DailySummary{
		UserID:        userID,
		Date:          day,
		TotalCalories: models.Round1(cals),
		TotalProtein:  models.Round1(prot),
		TotalCarbs:    models.Round1(carbs),
		TotalFat:      models.Round1(fat),
		CalorieGoal:   calGoal,
		ProteinGoal:   protGoal,
		CarbGoal:      carbGoal,
		FatGoal:       fatGoal,
		MealsLogged:   len(entries),
	}

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_calories", "total_protein", "total_carbs", "total_fat",
			"calorie_goal", "protein_goal", "carb_goal", "fat_goal",
			"meals_logged", "updated_at",
		}),
	}).Create(&summary).Error
}

package services

import (
	"errors"
	"math"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/apperror"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"

	"gorm.io/gorm"
)

type DashboardService struct{ db *gorm.DB }

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type MacroProgress struct {
	Consumed   float64 `json:"consumed"`
	Goal       float64 `json:"goal"`
	Percentage float64 `json:"percentage"`
}

type Progress struct {
	Date        string        `json:"date"`
	Calories    MacroProgress `json:"calories"`
	Protein     MacroProgress `json:"protein"`
	Carbs       MacroProgress `json:"carbs"`
	Fat         MacroProgress `json:"fat"`
	MealsLogged int           `json:"meals_logged"`
}

// pct is capped at 100; a zero or unset goal reads as 0% rather than
// dividing by zero.
func pct(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(100, round2(consumed/goal*100))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// GetProgress reads the day's summary. A missing summary row means
// nothing was logged that day: consumed reads as zero against the
// user's current goals.
func (s *DashboardService) GetProgress(userID uint, date time.Time) (*Progress, error) {
	day := models.Day(date)

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user", userID)
		}
		return nil, err
	}

	var summary models.DailySummary
	err := s.db.Where("user_id = ? AND date = ?", userID, day).First(&summary).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		calGoal, protGoal, carbGoal, fatGoal := user.GoalOrDefault()
		summary = models.DailySummary{
			UserID:      userID,
			Date:        day,
			CalorieGoal: calGoal,
			ProteinGoal: protGoal,
			CarbGoal:    carbGoal,
			FatGoal:     fatGoal,
		}
	}

	return &Progress{
		Date:        day.Format("2006-01-02"),
		Calories:    MacroProgress{Consumed: summary.TotalCalories, Goal: summary.CalorieGoal, Percentage: pct(summary.TotalCalories, summary.CalorieGoal)},
		Protein:     MacroProgress{Consumed: summary.TotalProtein, Goal: summary.ProteinGoal, Percentage: pct(summary.TotalProtein, summary.ProteinGoal)},
		Carbs:       MacroProgress{Consumed: summary.TotalCarbs, Goal: summary.CarbGoal, Percentage: pct(summary.TotalCarbs, summary.CarbGoal)},
		Fat:         MacroProgress{Consumed: summary.TotalFat, Goal: summary.FatGoal, Percentage: pct(summary.TotalFat, summary.FatGoal)},
		MealsLogged: summary.MealsLogged,
	}, nil
}

// RecentMeal is a flat row for the dashboard's recent-meals card.
type RecentMeal struct {
	ID            uint      `json:"id"`
	FoodName      string    `json:"food_name"`
	MealType      string    `json:"meal_type"`
	QuantityGrams float64   `json:"quantity_grams"`
	Calories      float64   `json:"calories"`
	TimeLogged    time.Time `json:"time_logged"`
}

// GetRecentMeals returns the day's entries, newest first.
func (s *DashboardService) GetRecentMeals(userID uint, date time.Time, limit int) ([]RecentMeal, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []RecentMeal
	err := s.db.
		Table("food_log_entries").
		Select("food_log_entries.id, foods.name AS food_name, food_log_entries.meal_type, food_log_entries.quantity_grams, food_log_entries.calories_consumed AS calories, food_log_entries.time_logged").
		Joins("JOIN foods ON foods.id = food_log_entries.food_id").
		Where("food_log_entries.user_id = ? AND food_log_entries.date_logged = ? AND food_log_entries.deleted_at IS NULL", userID, models.Day(date)).
		Order("food_log_entries.time_logged DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

type ChartData struct {
	Dates        []string  `json:"dates"`
	Calories     []float64 `json:"calories"`
	Protein      []float64 `json:"protein"`
	Carbs        []float64 `json:"carbs"`
	Fat          []float64 `json:"fat"`
	CalorieGoals []float64 `json:"calorie_goals"`
}

// GetChartData returns per-day series for the last `days` days ending
// on the given day. Days without a summary row are zero-filled so the
// chart axis stays continuous.
func (s *DashboardService) GetChartData(userID uint, endDate time.Time, days int) (*ChartData, error) {
	if days <= 0 {
		days = 7
	}
	end := models.Day(endDate)
	start := end.AddDate(0, 0, -(days - 1))

	var summaries []models.DailySummary
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&summaries).Error; err != nil {
		return nil, err
	}

	idx := map[string]models.DailySummary{}
	for _, sm := range summaries {
		idx[sm.Date.Format("2006-01-02")] = sm
	}

	out := &ChartData{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		sm := idx[key] // zero value when the day has no row
		out.Dates = append(out.Dates, d.Format("01/02"))
		out.Calories = append(out.Calories, sm.TotalCalories)
		out.Protein = append(out.Protein, sm.TotalProtein)
		out.Carbs = append(out.Carbs, sm.TotalCarbs)
		out.Fat = append(out.Fat, sm.TotalFat)
		out.CalorieGoals = append(out.CalorieGoals, sm.CalorieGoal)
	}
	return out, nil
}

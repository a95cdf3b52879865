package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"

	"gorm.io/gorm"
)

type ExportService struct{ db *gorm.DB }

func NewExportService(db *gorm.DB) *ExportService { return &ExportService{db: db} }

type exportRow struct {
	DateLogged    time.Time
	TimeLogged    time.Time
	MealType      string
	FoodName      string
	QuantityGrams float64
	Calories      float64
	Protein       float64
	Carbs         float64
	Fat           float64
	Notes         string
}

// WriteCSV streams the user's raw log rows for [from, to] as CSV. The
// bounds are taken at day grain, so both boundary days are included in
// full. It reads the log directly and has no dependency on summaries.
func (s *ExportService) WriteCSV(w io.Writer, userID uint, from, to time.Time) error {
	from = models.Day(from)
	to = models.Day(to)

	var rows []exportRow
	err := s.db.
		Table("food_log_entries").
		Select("food_log_entries.date_logged, food_log_entries.time_logged, food_log_entries.meal_type, foods.name AS food_name, food_log_entries.quantity_grams, food_log_entries.calories_consumed AS calories, food_log_entries.protein_consumed AS protein, food_log_entries.carbs_consumed AS carbs, food_log_entries.fat_consumed AS fat, food_log_entries.notes").
		Joins("JOIN foods ON foods.id = food_log_entries.food_id").
		Where("food_log_entries.user_id = ? AND food_log_entries.date_logged >= ? AND food_log_entries.date_logged <= ? AND food_log_entries.deleted_at IS NULL", userID, from, to).
		Order("food_log_entries.date_logged ASC, food_log_entries.time_logged ASC").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "time", "meal_type", "food", "quantity_grams", "calories", "protein", "carbs", "fat", "notes"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.DateLogged.Format("2006-01-02"),
			r.TimeLogged.Format("15:04:05"),
			r.MealType,
			r.FoodName,
			fmt.Sprintf("%.1f", r.QuantityGrams),
			fmt.Sprintf("%.1f", r.Calories),
			fmt.Sprintf("%.1f", r.Protein),
			fmt.Sprintf("%.1f", r.Carbs),
			fmt.Sprintf("%.1f", r.Fat),
			r.Notes,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

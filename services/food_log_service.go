package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/apperror"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"

	"gorm.io/gorm"
)

// dayLocks serializes recompute+upsert per (user, day) across all
// FoodLogService instances. Postgres transactions alone do not stop
// two concurrent recomputes from both reading the pre-insert row set;
// sqlite has no row locks at all.
var dayLocks = newKeyedMutex()

type FoodLogService struct {
	db        *gorm.DB
	summaries *SummaryService
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{db: db, summaries: NewSummaryService()}
}

type RecordRequest struct {
	FoodID        uint      `json:"food_id"`
	QuantityGrams float64   `json:"quantity_grams"`
	MealType      string    `json:"meal_type"`
	Date          time.Time `json:"date"` // zero value means today
	At            time.Time `json:"at"`   // zero value means now
	Notes         string    `json:"notes"`
}

func dayKey(userID uint, day time.Time) string {
	return fmt.Sprintf("%d|%s", userID, day.Format("2006-01-02"))
}

// Record validates the request, snapshots the food's macros for the
// requested quantity and persists the entry. The matching summary
// recompute runs in the same transaction: if it fails, the entry is
// rolled back too.
func (s *FoodLogService) Record(userID uint, req RecordRequest) (*models.FoodLogEntry, error) {
	if req.QuantityGrams <= 0 {
		return nil, apperror.Validation("quantity_grams", "quantity must be greater than zero")
	}
	if !models.ValidMealType(req.MealType) {
		return nil, apperror.Validation("meal_type", "meal type must be one of: Breakfast, Mid-Morning, Lunch, Evening Snack, Dinner, Late Night")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user", userID)
		}
		return nil, err
	}

	var food models.Food
	if err := s.db.Where("id = ? AND is_active = ?", req.FoodID, true).First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("food", req.FoodID)
		}
		return nil, err
	}

	at := req.At
	if at.IsZero() {
		at = time.Now()
	}
	day := req.Date
	if day.IsZero() {
		day = at
	}
	day = models.Day(day)

	nut := food.NutritionFor(req.QuantityGrams)
	entry := &models.FoodLogEntry{
		UserID:           userID,
		FoodID:           food.ID,
		QuantityGrams:    req.QuantityGrams,
		MealType:         req.MealType,
		CaloriesConsumed: nut.Calories,
		ProteinConsumed:  nut.Protein,
		CarbsConsumed:    nut.Carbs,
		FatConsumed:      nut.Fat,
		DateLogged:       day,
		TimeLogged:       at,
		Notes:            req.Notes,
	}

	key := dayKey(userID, day)
	dayLocks.Lock(key)
	defer dayLocks.Unlock(key)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		if err := s.summaries.Recompute(tx, userID, day); err != nil {
			return apperror.Consistency("after insert", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entry.Food = food
	return entry, nil
}

// Update re-snapshots the entry's macros from its stored food at the
// new quantity and reruns the recompute, same boundary as Record.
// Inactive foods are still valid here: the entry keeps its historical
// reference even after the catalog row is retired.
func (s *FoodLogService) Update(userID, entryID uint, quantityGrams float64, mealType, notes string) (*models.FoodLogEntry, error) {
	if quantityGrams <= 0 {
		return nil, apperror.Validation("quantity_grams", "quantity must be greater than zero")
	}
	if !models.ValidMealType(mealType) {
		return nil, apperror.Validation("meal_type", "invalid meal type")
	}

	var entry models.FoodLogEntry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("food log entry", entryID)
		}
		return nil, err
	}

	var food models.Food
	if err := s.db.First(&food, entry.FoodID).Error; err != nil {
		return nil, err
	}

	nut := food.NutritionFor(quantityGrams)
	entry.QuantityGrams = quantityGrams
	entry.MealType = mealType
	entry.CaloriesConsumed = nut.Calories
	entry.ProteinConsumed = nut.Protein
	entry.CarbsConsumed = nut.Carbs
	entry.FatConsumed = nut.Fat
	entry.Notes = notes

	key := dayKey(userID, entry.DateLogged)
	dayLocks.Lock(key)
	defer dayLocks.Unlock(key)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&entry).Error; err != nil {
			return err
		}
		if err := s.summaries.Recompute(tx, userID, entry.DateLogged); err != nil {
			return apperror.Consistency("after update", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entry.Food = food
	return &entry, nil
}

// Remove deletes the entry and recomputes its day's summary in one
// transaction. Deleting the last entry of a day leaves a zeroed
// summary row, it is never removed.
func (s *FoodLogService) Remove(userID, entryID uint) error {
	var entry models.FoodLogEntry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("food log entry", entryID)
		}
		return err
	}

	key := dayKey(userID, entry.DateLogged)
	dayLocks.Lock(key)
	defer dayLocks.Unlock(key)

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entry).Error; err != nil {
			return err
		}
		if err := s.summaries.Recompute(tx, userID, entry.DateLogged); err != nil {
			return apperror.Consistency("after delete", err)
		}
		return nil
	})
}

// ListForDay returns all entries for one day, earliest first.
func (s *FoodLogService) ListForDay(userID uint, day time.Time) ([]models.FoodLogEntry, error) {
	var entries []models.FoodLogEntry
	err := s.db.
		Preload("Food").
		Where("user_id = ? AND date_logged = ?", userID, models.Day(day)).
		Order("time_logged ASC").
		Find(&entries).Error
	return entries, err
}

// ListByDateRange returns entries within [from, to] inclusive, newest
// day first, with an optional meal-type filter.
func (s *FoodLogService) ListByDateRange(userID uint, from, to time.Time, mealType string) ([]models.FoodLogEntry, error) {
	q := s.db.
		Preload("Food").
		Where("user_id = ? AND date_logged >= ? AND date_logged <= ?", userID, models.Day(from), models.Day(to))
	if mealType != "" {
		q = q.Where("meal_type = ?", mealType)
	}
	var entries []models.FoodLogEntry
	err := q.Order("date_logged DESC, time_logged DESC").Find(&entries).Error
	return entries, err
}

package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 2000)
	food := seedFood(t, db, "Idli", 130)
	svc := NewFoodLogService(db)

	_, err := svc.Record(user.ID, RecordRequest{
		FoodID: food.ID, QuantityGrams: 150, MealType: models.MealBreakfast, Date: testDay,
	})
	require.NoError(t, err)
	_, err = svc.Record(user.ID, RecordRequest{
		FoodID: food.ID, QuantityGrams: 200, MealType: models.MealLunch, Date: testDay.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewExportService(db).WriteCSV(&buf, user.ID, testDay, testDay.AddDate(0, 0, 7)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, []string{"date", "time", "meal_type", "food", "quantity_grams", "calories", "protein", "carbs", "fat", "notes"}, records[0])
	assert.Equal(t, "2026-08-28", records[1][0])
	assert.Equal(t, "Breakfast", records[1][2])
	assert.Equal(t, "Idli", records[1][3])
	assert.Equal(t, "195.0", records[1][5])
}

func TestWriteCSVBoundsTakenAtDayGrain(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 2000)
	food := seedFood(t, db, "Idli", 130)
	svc := NewFoodLogService(db)

	_, err := svc.Record(user.ID, RecordRequest{
		FoodID: food.ID, QuantityGrams: 100, MealType: models.MealBreakfast, Date: testDay,
	})
	require.NoError(t, err)

	// bounds carrying a clock time still include the full boundary day
	var buf bytes.Buffer
	require.NoError(t, NewExportService(db).WriteCSV(&buf, user.ID,
		testDay.Add(15*time.Hour), testDay.Add(15*time.Hour)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2) // header + the boundary-day row
}

func TestWriteCSVRangeExcludesOutsideRows(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 2000)
	food := seedFood(t, db, "Idli", 130)
	svc := NewFoodLogService(db)

	_, err := svc.Record(user.ID, RecordRequest{
		FoodID: food.ID, QuantityGrams: 100, MealType: models.MealBreakfast, Date: testDay,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewExportService(db).WriteCSV(&buf, user.ID, testDay.AddDate(0, 0, 2), testDay.AddDate(0, 0, 9)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1) // header only
}

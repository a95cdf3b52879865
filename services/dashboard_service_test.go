package services

import (
	"testing"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/apperror"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProgressScenario(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 2000)
	food := seedFood(t, db, "Idli", 130)

	_, err := NewFoodLogService(db).Record(user.ID, RecordRequest{
		FoodID: food.ID, QuantityGrams: 150, MealType: models.MealBreakfast, Date: testDay,
	})
	require.NoError(t, err)

	p, err := NewDashboardService(db).GetProgress(user.ID, testDay)
	require.NoError(t, err)

	assert.Equal(t, 195.0, p.Calories.Consumed)
	assert.Equal(t, 2000.0, p.Calories.Goal)
	assert.InDelta(t, 9.75, p.Calories.Percentage, 0.001)
	assert.Equal(t, 1, p.MealsLogged)
}

func TestGetProgressWithoutSummaryRow(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 2000)

	p, err := NewDashboardService(db).GetProgress(user.ID, testDay)
	require.NoError(t, err)

	assert.Zero(t, p.Calories.Consumed)
	assert.Equal(t, 2000.0, p.Calories.Goal)
	assert.Zero(t, p.Calories.Percentage)
	assert.Equal(t, 100.0, p.Protein.Goal)
}

func TestGetProgressZeroGoalGuard(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 2000)
	food := seedFood(t, db, "Idli", 130)

	_, err := NewFoodLogService(db).Record(user.ID, RecordRequest{
		FoodID: food.ID, QuantityGrams: 100, MealType: models.MealBreakfast, Date: testDay,
	})
	require.NoError(t, err)

	// force a zero goal directly onto the summary row
	require.NoError(t, db.Model(&models.DailySummary{}).
		Where("user_id = ?", user.ID).
		Update("calorie_goal", 0).Error)

	p, err := NewDashboardService(db).GetProgress(user.ID, testDay)
	require.NoError(t, err)
	assert.Zero(t, p.Calories.Percentage) // not a divide-by-zero crash
}

func TestGetProgressPercentageIsCapped(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 100) // tiny goal
	food := seedFood(t, db, "Ghee Sweet", 500)

	_, err := NewFoodLogService(db).Record(user.ID, RecordRequest{
		FoodID: food.ID, QuantityGrams: 200, MealType: models.MealDinner, Date: testDay,
	})
	require.NoError(t, err)

	p, err := NewDashboardService(db).GetProgress(user.ID, testDay)
	require.NoError(t, err)
	assert.Equal(t, 100.0, p.Calories.Percentage)
}

func TestGetProgressUnknownUser(t *testing.T) {
	db := newTestDB(t)
	_, err := NewDashboardService(db).GetProgress(404, testDay)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetRecentMealsOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 2000)
	food := seedFood(t, db, "Idli", 130)
	svc := NewFoodLogService(db)

	for i := 0; i < 4; i++ {
		_, err := svc.Record(user.ID, RecordRequest{
			FoodID:        food.ID,
			QuantityGrams: 100,
			MealType:      models.MealLunch,
			Date:          testDay,
			At:            testDay.Add(time.Duration(9+i) * time.Hour),
		})
		require.NoError(t, err)
	}

	meals, err := NewDashboardService(db).GetRecentMeals(user.ID, testDay, 3)
	require.NoError(t, err)
	require.Len(t, meals, 3)

	// newest first
	assert.True(t, meals[0].TimeLogged.After(meals[1].TimeLogged))
	assert.True(t, meals[1].TimeLogged.After(meals[2].TimeLogged))
	assert.Equal(t, "Idli", meals[0].FoodName)
}

func TestGetChartDataZeroFillsMissingDays(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 2000)
	food := seedFood(t, db, "Idli", 130)

	_, err := NewFoodLogService(db).Record(user.ID, RecordRequest{
		FoodID: food.ID, QuantityGrams: 100, MealType: models.MealBreakfast, Date: testDay,
	})
	require.NoError(t, err)

	chart, err := NewDashboardService(db).GetChartData(user.ID, testDay, 7)
	require.NoError(t, err)

	require.Len(t, chart.Dates, 7)
	require.Len(t, chart.Calories, 7)
	assert.Equal(t, 130.0, chart.Calories[6]) // the reference day is the last point
	for i := 0; i < 6; i++ {
		assert.Zero(t, chart.Calories[i])
	}
}

func TestGetChartDataWindowFollowsReferenceDay(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 2000)
	food := seedFood(t, db, "Idli", 130)

	_, err := NewFoodLogService(db).Record(user.ID, RecordRequest{
		FoodID: food.ID, QuantityGrams: 100, MealType: models.MealBreakfast, Date: testDay,
	})
	require.NoError(t, err)

	// a window ending the week before the entry must not see it
	chart, err := NewDashboardService(db).GetChartData(user.ID, testDay.AddDate(0, 0, -7), 7)
	require.NoError(t, err)
	for i := range chart.Calories {
		assert.Zero(t, chart.Calories[i])
	}

	// a window starting on the entry's day sees it as the first point
	chart, err = NewDashboardService(db).GetChartData(user.ID, testDay.AddDate(0, 0, 6), 7)
	require.NoError(t, err)
	assert.Equal(t, 130.0, chart.Calories[0])
}

package services

import (
	"testing"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateGoals(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 2000)

	updated, err := NewGoalService(db).UpdateGoals(user.ID, 1800, 90, 220, 60)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, updated.CalorieGoal)
	assert.Equal(t, 60.0, updated.FatGoal)

	_, err = NewGoalService(db).UpdateGoals(user.ID, -1, 0, 0, 0)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = NewGoalService(db).UpdateGoals(999, 1800, 90, 220, 60)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRecalculateGoalsMacroSplit(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 2000)

	updated, err := NewGoalService(db).RecalculateGoals(user.ID)
	require.NoError(t, err)

	// 25/45/30 split over the TDEE-derived calorie goal
	assert.InDelta(t, updated.CalorieGoal*0.25/4, updated.ProteinGoal, 0.1)
	assert.InDelta(t, updated.CalorieGoal*0.45/4, updated.CarbGoal, 0.1)
	assert.InDelta(t, updated.CalorieGoal*0.30/9, updated.FatGoal, 0.1)
}

package services

import (
	"errors"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/apperror"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"

	"gorm.io/gorm"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

// UpdateGoals sets the user's daily targets. Existing summaries keep
// the goals captured at their last log mutation; only the next
// recompute picks up the new values.
func (s *GoalService) UpdateGoals(userID uint, calories, protein, carbs, fat float64) (*models.User, error) {
	if calories < 0 || protein < 0 || carbs < 0 || fat < 0 {
		return nil, apperror.Validation("goals", "goals must not be negative")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user", userID)
		}
		return nil, err
	}

	user.CalorieGoal = calories
	user.ProteinGoal = protein
	user.CarbGoal = carbs
	user.FatGoal = fat
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// RecalculateGoals derives targets from the user's current stats:
// calories from TDEE, macros from the standard 25/45/30 split.
func (s *GoalService) RecalculateGoals(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user", userID)
		}
		return nil, err
	}

	user.CalorieGoal = models.Round1(user.TDEE())
	user.ProteinGoal, user.CarbGoal, user.FatGoal = user.MacroGoals(user.CalorieGoal)
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

package services

import (
	"errors"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/apperror"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"

	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

func (s *UserService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user", userID)
		}
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	HeightCm       float64 `json:"height_cm"`
	WeightKg       float64 `json:"weight_kg"`
	ActivityLevel  string  `json:"activity_level"`
	FoodPreference string  `json:"food_preference"`
	IsDiabetic     bool    `json:"is_diabetic"`
	// Recompute goals from the updated stats. Past summaries keep the
	// goals they captured; only future recomputes see the new ones.
	RecalculateGoals bool `json:"recalculate_goals"`
}

func (s *UserService) UpdateProfile(userID uint, upd ProfileUpdate) (*models.User, error) {
	if upd.Age <= 0 || upd.HeightCm <= 0 || upd.WeightKg <= 0 {
		return nil, apperror.Validation("profile", "age, height and weight must be positive")
	}

	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = upd.FirstName
	user.LastName = upd.LastName
	user.Age = upd.Age
	user.Gender = upd.Gender
	user.HeightCm = upd.HeightCm
	user.WeightKg = upd.WeightKg
	user.ActivityLevel = upd.ActivityLevel
	user.FoodPreference = upd.FoodPreference
	user.IsDiabetic = upd.IsDiabetic

	if upd.RecalculateGoals {
		user.CalorieGoal = models.Round1(user.TDEE())
		user.ProteinGoal, user.CarbGoal, user.FatGoal = user.MacroGoals(user.CalorieGoal)
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

package services

import (
	"errors"
	"strings"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/apperror"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/utils"

	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

type RegisterRequest struct {
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	HeightCm       float64 `json:"height_cm"`
	WeightKg       float64 `json:"weight_kg"`
	ActivityLevel  string  `json:"activity_level"`
	FoodPreference string  `json:"food_preference"`
	IsDiabetic     bool    `json:"is_diabetic"`
}

// Register creates a user with TDEE-derived initial goals.
func (s *AuthService) Register(req RegisterRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Username == "" || req.Email == "" {
		return nil, apperror.Validation("username", "username and email are required")
	}
	if len(req.Password) < 6 {
		return nil, apperror.Validation("password", "password must be at least 6 characters")
	}
	if req.Age <= 0 || req.HeightCm <= 0 || req.WeightKg <= 0 {
		return nil, apperror.Validation("profile", "age, height and weight must be positive")
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ? OR email = ?", req.Username, req.Email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperror.Conflict("user", "username or email already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:       req.Username,
		Email:          req.Email,
		Password:       hashed,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Age:            req.Age,
		Gender:         req.Gender,
		HeightCm:       req.HeightCm,
		WeightKg:       req.WeightKg,
		ActivityLevel:  req.ActivityLevel,
		FoodPreference: req.FoodPreference,
		IsDiabetic:     req.IsDiabetic,
	}
	if user.ActivityLevel == "" {
		user.ActivityLevel = "Sedentary"
	}
	if user.FoodPreference == "" {
		user.FoodPreference = "Vegetarian"
	}

	user.CalorieGoal = models.Round1(user.TDEE())
	user.ProteinGoal, user.CarbGoal, user.FatGoal = user.MacroGoals(user.CalorieGoal)

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login checks credentials against username or email and returns a JWT.
func (s *AuthService) Login(identifier, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.
		Where("username = ? OR email = ?", identifier, strings.ToLower(identifier)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperror.NotFound("user", identifier)
		}
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, apperror.Validation("password", "incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

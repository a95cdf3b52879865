package services

import (
	"errors"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/apperror"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

type FoodSearchParams struct {
	Query    string
	Category string
	FoodType string
	Limit    int
	// When set, foods unsuitable for this user (preference, diabetic
	// GI threshold) are filtered out of the results.
	ForUser *models.User
}

// Search returns active catalog entries matching the params.
func (s *FoodService) Search(p FoodSearchParams) ([]models.Food, error) {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 20
	}

	q := s.db.Where("is_active = ?", true)
	if p.Query != "" {
		like := "%" + p.Query + "%"
		q = q.Where("name LIKE ? OR name_hindi LIKE ?", like, like)
	}
	if p.Category != "" {
		q = q.Where("category = ?", p.Category)
	}
	if p.FoodType != "" {
		q = q.Where("food_type = ?", p.FoodType)
	}

	var foods []models.Food
	if err := q.Order("name ASC").Limit(p.Limit).Find(&foods).Error; err != nil {
		return nil, err
	}

	if p.ForUser == nil {
		return foods, nil
	}
	suitable := foods[:0]
	for _, f := range foods {
		if f.SuitableFor(p.ForUser) {
			suitable = append(suitable, f)
		}
	}
	return suitable, nil
}

func (s *FoodService) Get(id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.Where("id = ? AND is_active = ?", id, true).First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("food", id)
		}
		return nil, err
	}
	return &food, nil
}

// Create adds a catalog entry. Duplicate active names are rejected.
func (s *FoodService) Create(food *models.Food) error {
	if food.Name == "" {
		return apperror.Validation("name", "food name is required")
	}
	if food.CaloriesPer100g < 0 || food.ProteinPer100g < 0 || food.CarbsPer100g < 0 || food.FatPer100g < 0 {
		return apperror.Validation("macros", "per-100g values must not be negative")
	}

	var count int64
	if err := s.db.Model(&models.Food{}).
		Where("name = ? AND is_active = ?", food.Name, true).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperror.Conflict("food", "an active food with this name already exists")
	}

	food.IsActive = true
	return s.db.Create(food).Error
}

// Update edits a catalog entry. Existing log entries keep the macros
// snapshotted when they were recorded; summaries are not touched.
func (s *FoodService) Update(id uint, updated *models.Food) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("food", id)
		}
		return nil, err
	}

	food.Name = updated.Name
	food.NameHindi = updated.NameHindi
	food.Category = updated.Category
	food.FoodType = updated.FoodType
	food.CaloriesPer100g = updated.CaloriesPer100g
	food.ProteinPer100g = updated.ProteinPer100g
	food.CarbsPer100g = updated.CarbsPer100g
	food.FatPer100g = updated.FatPer100g
	food.FiberPer100g = updated.FiberPer100g
	food.GIIndex = updated.GIIndex
	food.Description = updated.Description
	food.ServingSizeGrams = updated.ServingSizeGrams
	food.IsActive = updated.IsActive

	if err := s.db.Save(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// Deactivate soft-deletes a food so it stops appearing in search but
// stays referenceable from historical log entries.
func (s *FoodService) Deactivate(id uint) error {
	var food models.Food
	if err := s.db.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("food", id)
		}
		return err
	}
	food.IsActive = false
	return s.db.Save(&food).Error
}

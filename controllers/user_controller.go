package controllers

import (
	"net/http"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := services.NewUserService(config.DB).Get(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":              user.ID,
		"username":        user.Username,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"age":             user.Age,
		"gender":          user.Gender,
		"height_cm":       user.HeightCm,
		"weight_kg":       user.WeightKg,
		"activity_level":  user.ActivityLevel,
		"food_preference": user.FoodPreference,
		"is_diabetic":     user.IsDiabetic,
		"calorie_goal":    user.CalorieGoal,
		"protein_goal":    user.ProteinGoal,
		"carb_goal":       user.CarbGoal,
		"fat_goal":        user.FatGoal,
		"bmi":             user.BMI(),
		"bmi_category":    user.BMICategory(),
		"bmr":             user.BMR(),
		"tdee":            user.TDEE(),
	})
}

func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var upd services.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.NewUserService(config.DB).UpdateProfile(userID, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "calorie_goal": user.CalorieGoal})
}

package controllers

import (
	"net/http"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

func GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := services.NewUserService(config.DB).Get(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	cals, prot, carbs, fat := user.GoalOrDefault()
	c.JSON(http.StatusOK, gin.H{
		"calorie_goal": cals,
		"protein_goal": prot,
		"carb_goal":    carbs,
		"fat_goal":     fat,
	})
}

func UpdateGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	var body struct {
		CalorieGoal float64 `json:"calorie_goal"`
		ProteinGoal float64 `json:"protein_goal"`
		CarbGoal    float64 `json:"carb_goal"`
		FatGoal     float64 `json:"fat_goal"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.NewGoalService(config.DB).
		UpdateGoals(userID, body.CalorieGoal, body.ProteinGoal, body.CarbGoal, body.FatGoal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"calorie_goal": user.CalorieGoal,
		"protein_goal": user.ProteinGoal,
		"carb_goal":    user.CarbGoal,
		"fat_goal":     user.FatGoal,
	})
}

func RecalculateGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := services.NewGoalService(config.DB).RecalculateGoals(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"calorie_goal": user.CalorieGoal,
		"protein_goal": user.ProteinGoal,
		"carb_goal":    user.CarbGoal,
		"fat_goal":     user.FatGoal,
	})
}

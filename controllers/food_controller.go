package controllers

import (
	"net/http"
	"strconv"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

func SearchFoods(c *gin.Context) {
	userID := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	params := services.FoodSearchParams{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		FoodType: c.Query("food_type"),
		Limit:    limit,
	}

	// suitable=true narrows results to the caller's dietary profile
	if c.Query("suitable") == "true" {
		user, err := services.NewUserService(config.DB).Get(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		params.ForUser = user
	}

	foods, err := services.NewFoodService(config.DB).Search(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods, "count": len(foods)})
}

func GetFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	food, err := services.NewFoodService(config.DB).Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{
		"food":        food,
		"gi_category": food.GICategory(),
	}
	// nutrition preview for the food's default serving
	if food.ServingSizeGrams > 0 {
		resp["serving_nutrition"] = food.NutritionFor(food.ServingSizeGrams)
	}
	c.JSON(http.StatusOK, resp)
}

package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

// parseDay reads a YYYY-MM-DD query param, defaulting to today.
func parseDay(c *gin.Context, param string) time.Time {
	if s := c.Query(param); s != "" {
		if d, err := time.Parse("2006-01-02", s); err == nil {
			return d
		}
	}
	return time.Now()
}

func LogMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	var body struct {
		FoodID        uint    `json:"food_id"`
		QuantityGrams float64 `json:"quantity_grams"`
		MealType      string  `json:"meal_type"`
		Date          string  `json:"date"` // YYYY-MM-DD, optional
		Notes         string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := services.RecordRequest{
		FoodID:        body.FoodID,
		QuantityGrams: body.QuantityGrams,
		MealType:      body.MealType,
		Notes:         body.Notes,
	}
	if body.Date != "" {
		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		req.Date = d
	}

	entry, err := services.NewFoodLogService(config.DB).Record(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func UpdateMealLog(c *gin.Context) {
	userID := c.GetUint("userID")
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var body struct {
		QuantityGrams float64 `json:"quantity_grams"`
		MealType      string  `json:"meal_type"`
		Notes         string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.NewFoodLogService(config.DB).
		Update(userID, uint(entryID), body.QuantityGrams, body.MealType, body.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func DeleteMealLog(c *gin.Context) {
	userID := c.GetUint("userID")
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := services.NewFoodLogService(config.DB).Remove(userID, uint(entryID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal log deleted"})
}

func ListMealLogs(c *gin.Context) {
	userID := c.GetUint("userID")
	svc := services.NewFoodLogService(config.DB)

	if from := c.Query("from"); from != "" {
		fromD, err := time.Parse("2006-01-02", from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		toD := fromD
		if to := c.Query("to"); to != "" {
			if toD, err = time.Parse("2006-01-02", to); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
				return
			}
		}
		entries, err := svc.ListByDateRange(userID, fromD, toD, c.Query("meal_type"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, entries)
		return
	}

	entries, err := svc.ListForDay(userID, parseDay(c, "date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

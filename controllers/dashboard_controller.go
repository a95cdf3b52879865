package controllers

import (
	"net/http"
	"strconv"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

func GetProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	progress, err := services.NewDashboardService(config.DB).
		GetProgress(userID, parseDay(c, "date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func GetRecentMeals(c *gin.Context) {
	userID := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	meals, err := services.NewDashboardService(config.DB).
		GetRecentMeals(userID, parseDay(c, "date"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func GetChartData(c *gin.Context) {
	userID := c.GetUint("userID")
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	chart, err := services.NewDashboardService(config.DB).
		GetChartData(userID, parseDay(c, "date"), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

package controllers

import (
	"net/http"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

func GetRecommendations(c *gin.Context) {
	userID := c.GetUint("userID")

	text, err := services.NewRecommendationService(config.DB).
		GetRecommendations(userID, parseDay(c, "date"))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": text})
}

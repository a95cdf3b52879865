package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

// ExportCSV streams the caller's raw food log rows for a date range
// (default: last 30 days) as a CSV attachment.
func ExportCSV(c *gin.Context) {
	userID := c.GetUint("userID")

	to := models.Day(time.Now())
	from := to.AddDate(0, 0, -30)
	if s := c.Query("from"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		from = d
	}
	if s := c.Query("to"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return
		}
		to = d
	}

	filename := fmt.Sprintf("food_log_%s_%s.csv", from.Format("20060102"), to.Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	if err := services.NewExportService(config.DB).WriteCSV(c.Writer, userID, from, to); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
	}
}

package routes

import (
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/controllers"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/goals", controllers.GetGoals)
		user.PUT("/goals", controllers.UpdateGoals)
		user.POST("/goals/recalculate", controllers.RecalculateGoals)
	}

	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("/search", controllers.SearchFoods)
		foods.GET("/:id", controllers.GetFood)
	}

	logs := r.Group("/logs")
	logs.Use(middlewares.AuthMiddleware())
	{
		logs.POST("", controllers.LogMeal)
		logs.GET("", controllers.ListMealLogs)
		logs.PUT("/:id", controllers.UpdateMealLog)
		logs.DELETE("/:id", controllers.DeleteMealLog)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("/progress", controllers.GetProgress)
		dashboard.GET("/recent-meals", controllers.GetRecentMeals)
		dashboard.GET("/chart", controllers.GetChartData)
	}

	r.GET("/export/csv", middlewares.AuthMiddleware(), controllers.ExportCSV)
	r.GET("/recommendations", middlewares.AuthMiddleware(), controllers.GetRecommendations)

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		admin.POST("/foods", controllers.AdminCreateFood)
		admin.PUT("/foods/:id", controllers.AdminUpdateFood)
		admin.DELETE("/foods/:id", controllers.AdminDeleteFood)
	}

	return r
}

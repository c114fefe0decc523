package routes

import (
	"net/http"

	"farmpro/controllers"
	middlewares "farmpro/middleware"
	"farmpro/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, suggestSvc *services.SuggestService) {

	// client view
	router.Static("/static", "./web/static")
	router.LoadHTMLGlob("web/templates/*")

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	router.GET("/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"title": "Farm Pro - Sign in"})
	})
	router.GET("/dashboard", func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{"title": "Farm Pro - Dashboard"})
	})

	earningController := controllers.NewEarningController(db)
	expenseController := controllers.NewExpenseController(db)
	suggestController := controllers.NewSuggestController(suggestSvc)
	authController := controllers.NewAuthController(db, redisCli)

	api := router.Group("/api")

	api.GET("/earnings", earningController.GetEarnings)
	api.POST("/earnings", earningController.CreateEarning)
	api.DELETE("/earnings", earningController.DeleteEarning)
	api.GET("/earnings/suggest", suggestController.SuggestSources)

	api.GET("/expenses", expenseController.GetExpenses)
	api.POST("/expenses", expenseController.CreateExpense)
	api.DELETE("/expenses", expenseController.DeleteExpense)
	api.GET("/expenses/suggest", suggestController.SuggestCategories)

	api.POST("/auth/google", authController.AuthGoogle)
	api.POST("/auth/email", authController.EmailSignIn)
	api.GET("/auth/verify", authController.VerifyEmail)
	api.GET("/auth/session", middlewares.SessionMiddleware(), authController.GetSession)
	api.DELETE("/auth/logout", authController.Logout)
}

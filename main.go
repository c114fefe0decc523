package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmpro/config"
	"farmpro/jobs"
	"farmpro/models"
	"farmpro/routes"
	"farmpro/services"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.User{}, &models.Account{}, &models.Earning{}, &models.Expense{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {
	router, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	suggestService := services.NewSuggestService(config.DB)
	jobs.SetSuggestionRebuilder(suggestService)

	c := cron.New()
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, config.RedisClient, suggestService)

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Println("Server starting on port " + port + "...")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// shutdown hook: stop accepting requests, then release the shared pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	c.Stop()
	config.CloseDB()
}

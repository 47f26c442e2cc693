package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kenandcrys/auth-me/config"
	"github.com/kenandcrys/auth-me/jobs"
	"github.com/kenandcrys/auth-me/models"
	"github.com/kenandcrys/auth-me/routes"
	"github.com/kenandcrys/auth-me/services"
	"github.com/kenandcrys/auth-me/services/logger"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Spot{},
		&models.SpotImage{},
		&models.Review{},
		&models.ReviewImage{},
		&models.Booking{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, falling back to existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	reconciler := services.NewRatingReconciler(config.DB, logger.NewDefaultLogger(logger.InfoLevel))
	jobs.SetRatingReconciler(reconciler)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

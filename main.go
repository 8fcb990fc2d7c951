package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/augie-sif/sif-backend/config"
	"github.com/augie-sif/sif-backend/database"
	"github.com/augie-sif/sif-backend/routes"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Required for signing session tokens
	config.MustGetEnv("JWT_SECRET")

	// Connect to database and run migrations
	database.Initialize()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.GetEnv("FRONTEND_URL", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register routes
	routes.SetupRoutes(router)

	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("🚀 SIF backend starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

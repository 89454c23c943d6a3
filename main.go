package main

import (
	"log"
	"net/http"
	"os"

	"food-vendor-api/config"
	"food-vendor-api/handlers"
	"food-vendor-api/routes"
	"food-vendor-api/services"
	"food-vendor-api/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Wire core services over their storage adapters
	var offerCache services.OfferCache
	if client := config.InitRedis(); client != nil {
		offerCache = storage.NewRedisOfferCache(client)
		log.Println("Offer cache enabled")
	}

	lifecycle := services.NewOrderLifecycle(storage.NewOrderRepo(config.DB))
	resolver := services.NewOfferResolver(
		storage.NewOfferRepo(config.DB),
		storage.NewVendorRepo(config.DB),
		offerCache,
	)
	handlers.Setup(lifecycle, resolver)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Vendor Food Ordering API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

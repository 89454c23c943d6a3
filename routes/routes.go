package routes

import (
	"food-vendor-api/handlers"
	"food-vendor-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/vendors", handlers.RegisterVendor)
		public.POST("/auth/login", handlers.Login)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Vendor routes ──────────────────────────────────────────────
	vendor := r.Group("/api/vendor")
	vendor.Use(middleware.AuthRequired())
	{
		// Profile
		vendor.GET("/profile", handlers.GetProfile)
		vendor.PUT("/profile", handlers.UpdateProfile)
		vendor.PUT("/cover-images", handlers.UpdateCoverImages)
		vendor.PUT("/service", handlers.ToggleService)

		// Food catalog
		vendor.POST("/foods", handlers.AddFood)
		vendor.GET("/foods", handlers.GetFoods)

		// Order fulfillment
		vendor.GET("/orders", handlers.GetOrders)
		vendor.GET("/orders/:id", handlers.GetOrderDetail)
		vendor.PUT("/orders/:id/process", handlers.ProcessOrder)

		// Offers
		vendor.GET("/offers", handlers.GetOffers)
		vendor.POST("/offers", handlers.AddOffer)
		vendor.PUT("/offers/:id", handlers.EditOffer)
	}
}

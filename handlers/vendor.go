package handlers

import (
	"net/http"

	"food-vendor-api/config"
	"food-vendor-api/middleware"
	"food-vendor-api/models"

	"github.com/gin-gonic/gin"
)

// ── Vendor profile ──────────────────────────────────────────────────────────

type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	FoodType string `json:"food_type"`
	Address  string `json:"address"`
	Phone    string `json:"phone" binding:"required"`
}

// GetProfile returns the authenticated vendor's profile
func GetProfile(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	var vendor models.Vendor
	if err := config.DB.Preload("Foods").First(&vendor, vendorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

// UpdateProfile overwrites the vendor's editable profile fields
func UpdateProfile(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	var vendor models.Vendor
	if err := config.DB.First(&vendor, vendorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor.Name = req.Name
	vendor.FoodType = req.FoodType
	vendor.Address = req.Address
	vendor.Phone = req.Phone
	config.DB.Save(&vendor)

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "vendor": vendor})
}

type UpdateCoverImagesRequest struct {
	Images []string `json:"images" binding:"required,min=1"`
}

// UpdateCoverImages appends uploaded image names to the vendor's cover list.
// File handling itself lives in the upload layer; this receives filenames.
func UpdateCoverImages(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	var vendor models.Vendor
	if err := config.DB.First(&vendor, vendorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	var req UpdateCoverImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor.CoverImages = append(vendor.CoverImages, req.Images...)
	config.DB.Save(&vendor)

	c.JSON(http.StatusOK, gin.H{"message": "Cover images updated", "vendor": vendor})
}

type ToggleServiceRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToggleService flips service availability; coordinates update when supplied
func ToggleService(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	var vendor models.Vendor
	if err := config.DB.First(&vendor, vendorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	// Body is optional; coordinates update only when supplied
	var req ToggleServiceRequest
	_ = c.ShouldBindJSON(&req)

	vendor.ServiceAvailable = !vendor.ServiceAvailable
	if req.Lat != 0 && req.Lng != 0 {
		vendor.Lat = req.Lat
		vendor.Lng = req.Lng
	}
	config.DB.Save(&vendor)

	c.JSON(http.StatusOK, gin.H{
		"message":           "Service availability updated",
		"service_available": vendor.ServiceAvailable,
		"vendor":            vendor,
	})
}

// ── Food catalog ────────────────────────────────────────────────────────────

type CreateFoodRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	FoodType    string   `json:"food_type"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	ReadyTime   int      `json:"ready_time_minutes"`
	Images      []string `json:"images"`
}

// AddFood adds a new item to the vendor's catalog
func AddFood(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	var vendor models.Vendor
	if err := config.DB.First(&vendor, vendorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food := models.Food{
		VendorID:    vendor.ID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		FoodType:    req.FoodType,
		Price:       req.Price,
		ReadyTime:   req.ReadyTime,
		Images:      req.Images,
	}
	if err := config.DB.Create(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add food"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Food added", "food": food})
}

// GetFoods lists the vendor's catalog
func GetFoods(c *gin.Context) {
	vendorID := middleware.GetVendorID(c)
	var foods []models.Food
	config.DB.Where("vendor_id = ?", vendorID).Find(&foods)
	c.JSON(http.StatusOK, gin.H{"count": len(foods), "foods": foods})
}

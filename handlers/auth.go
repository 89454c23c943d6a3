package handlers

import (
	"net/http"

	"food-vendor-api/config"
	"food-vendor-api/middleware"
	"food-vendor-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterVendorRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	FoodType string  `json:"food_type"`
	Address  string  `json:"address"`
	Pincode  string  `json:"pincode"`
	Phone    string  `json:"phone" binding:"required"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterVendor creates a new vendor account
func RegisterVendor(c *gin.Context) {
	var req RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check email uniqueness
	var existing models.Vendor
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	vendor := models.Vendor{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		FoodType:     req.FoodType,
		Address:      req.Address,
		Pincode:      req.Pincode,
		Phone:        req.Phone,
		Lat:          req.Lat,
		Lng:          req.Lng,
	}
	if err := config.DB.Create(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
		return
	}

	token, err := middleware.GenerateToken(&vendor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vendor account created successfully",
		"token":   token,
		"vendor": gin.H{
			"id":    vendor.ID,
			"name":  vendor.Name,
			"email": vendor.Email,
		},
	})
}

// Login authenticates a vendor and returns a JWT
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var vendor models.Vendor
	if err := config.DB.Where("email = ?", req.Email).First(&vendor).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := middleware.GenerateToken(&vendor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"vendor": gin.H{
			"id":        vendor.ID,
			"name":      vendor.Name,
			"email":     vendor.Email,
			"food_type": vendor.FoodType,
		},
	})
}

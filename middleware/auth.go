package middleware

import (
	"net/http"
	"strings"
	"time"

	"food-vendor-api/config"
	"food-vendor-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	VendorID uint   `json:"vendor_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	FoodType string `json:"food_type"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given vendor
func GenerateToken(vendor *models.Vendor) (string, error) {
	claims := Claims{
		VendorID: vendor.ID,
		Email:    vendor.Email,
		Name:     vendor.Name,
		FoodType: vendor.FoodType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the JWT and injects claims into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("vendorID", claims.VendorID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// GetVendorID extracts the caller vendor ID from context
func GetVendorID(c *gin.Context) uint {
	val, _ := c.Get("vendorID")
	return val.(uint)
}

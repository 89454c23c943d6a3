package config

import (
	"log"
	"os"

	"food-vendor-api/models"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign vendor tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "food_vendor_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "food_vendor.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.Vendor{},
		&models.Food{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.Offer{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}

// InitRedis returns a client for the offer cache, or nil when REDIS_ADDR is
// unset and caching is disabled.
func InitRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}

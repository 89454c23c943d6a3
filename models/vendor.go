package models

import "time"

type Vendor struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string    `json:"-" gorm:"not null"`
	FoodType         string    `json:"food_type"`
	Address          string    `json:"address"`
	Pincode          string    `json:"pincode"`
	Phone            string    `json:"phone" gorm:"not null"`
	Lat              float64   `json:"lat"`
	Lng              float64   `json:"lng"`
	ServiceAvailable bool      `json:"service_available" gorm:"default:false"`
	Rating           float64   `json:"rating" gorm:"default:0"`
	CoverImages      []string  `json:"cover_images" gorm:"serializer:json"`
	Foods            []Food    `json:"foods,omitempty" gorm:"foreignKey:VendorID"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Food struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	VendorID    uint      `json:"vendor_id" gorm:"not null"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	FoodType    string    `json:"food_type"`
	Price       float64   `json:"price" gorm:"not null"`
	ReadyTime   int       `json:"ready_time_minutes"` // preparation estimate in minutes
	Images      []string  `json:"images" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

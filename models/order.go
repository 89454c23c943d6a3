package models

import "time"

// OrderStatus represents all possible fulfillment states of an order
type OrderStatus string

const (
	StatusWaiting      OrderStatus = "WAITING"
	StatusAccepted     OrderStatus = "ACCEPTED"
	StatusRejected     OrderStatus = "REJECTED"
	StatusUnderProcess OrderStatus = "UNDER_PROCESS"
	StatusReady        OrderStatus = "READY"
	StatusFailed       OrderStatus = "FAILED"
)

// AllStatuses is the closed enumeration of recognized order states
var AllStatuses = []OrderStatus{
	StatusWaiting,
	StatusAccepted,
	StatusRejected,
	StatusUnderProcess,
	StatusReady,
	StatusFailed,
}

// Valid reports whether s is one of the recognized order states
func (s OrderStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Order struct {
	ID            uint                 `json:"id" gorm:"primaryKey"`
	CustomerID    uint                 `json:"customer_id" gorm:"not null"`
	VendorID      uint                 `json:"vendor_id" gorm:"not null"`
	Status        OrderStatus          `json:"order_status" gorm:"not null;default:'WAITING'"`
	Remarks       string               `json:"remarks"`
	ReadyTime     int                  `json:"ready_time_minutes"` // estimated minutes until ready
	TotalAmount   float64              `json:"total_amount"`
	Items         []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type OrderItem struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	OrderID  uint `json:"order_id" gorm:"not null"`
	FoodID   uint `json:"food_id" gorm:"not null"`
	Food     Food `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	Quantity int  `json:"quantity" gorm:"not null"`
}

// OrderStatusHistory tracks every status change — audit trail
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // vendor ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}

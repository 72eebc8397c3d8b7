package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses. Status lives on the row as a plain string; every change is
// also appended to OrderStatusHistory.
const (
	OrderStatusPending    = "pending"
	OrderStatusScheduled  = "scheduled"
	OrderStatusInProgress = "in_progress"
	OrderStatusDelivered  = "delivered"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"uniqueIndex;not null" json:"orderNumber"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for detail views

	DeliveryDate    time.Time `json:"deliveryDate"`
	TimeSlot        string    `json:"timeSlot"` // e.g. "06:00-09:00"
	FreshnessHours  int       `json:"freshnessHours"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	DeliveryAddress string    `json:"deliveryAddress"`
	TotalAmount     float64   `json:"totalAmount"`
	Status          string    `gorm:"not null;default:pending" json:"status"`

	TruckID *uint  `json:"truckId"`
	Truck   *Truck `json:"-"`

	OrderItems    []OrderItem          `json:"-"`
	StatusHistory []OrderStatusHistory `json:"-"`
}

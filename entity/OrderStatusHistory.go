package entity

import (
	"gorm.io/gorm"
)

// OrderStatusHistory is append-only; rows are never updated or deleted.
type OrderStatusHistory struct {
	gorm.Model
	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	Status string `gorm:"not null" json:"status"`
	Note   string `json:"note"`
}

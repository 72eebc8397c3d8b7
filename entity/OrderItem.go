package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	QuantityKg float64 `json:"quantityKg"`
	UnitPrice  float64 `json:"unitPrice"`
	Subtotal   float64 `json:"subtotal"` // quantityKg * unitPrice

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FishTypeID uint     `json:"fishTypeId"`
	FishType   FishType `json:"-"` // preload only when the name is needed
}

package entity

import (
	"gorm.io/gorm"
)

const (
	TruckStatusAvailable   = "available"
	TruckStatusOnRoute     = "on_route"
	TruckStatusMaintenance = "maintenance"
)

type Truck struct {
	gorm.Model
	PlateNumber string  `gorm:"uniqueIndex;not null" json:"plateNumber"`
	DriverName  string  `json:"driverName"`
	CapacityKg  float64 `json:"capacityKg"`
	Status      string  `gorm:"not null;default:available" json:"status"`

	// last reported GPS position
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Orders []Order `json:"-"`
}

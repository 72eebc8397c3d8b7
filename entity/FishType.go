package entity

import (
	"gorm.io/gorm"
)

type FishType struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"` // pelagic | demersal | shellfish
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	OrderItems  []OrderItem            `json:"-"`
	Prices      []FishPrice            `json:"-"`
	Predictions []DailyPricePrediction `json:"-"`
}

package entity

import (
	"time"

	"gorm.io/gorm"
)

// FishPrice is the actual market price recorded for one fish type on one day,
// LKR per kg. One row per (fish type, date).
type FishPrice struct {
	gorm.Model
	FishTypeID uint     `gorm:"uniqueIndex:idx_fish_price_day;not null" json:"fishTypeId"`
	FishType   FishType `json:"-"`

	PriceDate      time.Time `gorm:"uniqueIndex:idx_fish_price_day;not null" json:"priceDate"`
	RetailPrice    float64   `json:"retailPrice"`
	WholesalePrice float64   `json:"wholesalePrice"`
	MarketName     string    `json:"marketName"`
}

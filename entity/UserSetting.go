package entity

import (
	"gorm.io/gorm"
)

// UserSetting is one durable row per user. The old build kept these in a
// process-global map, which lost everything on restart.
type UserSetting struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	EmailNotifications bool   `gorm:"default:true" json:"emailNotifications"`
	SMSNotifications   bool   `gorm:"default:false" json:"smsNotifications"`
	PriceAlerts        bool   `gorm:"default:true" json:"priceAlerts"`
	WeatherAlerts      bool   `gorm:"default:true" json:"weatherAlerts"`
	Language           string `gorm:"default:en" json:"language"` // en | si | ta
	Theme              string `gorm:"default:light" json:"theme"`
}

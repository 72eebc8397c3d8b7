package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `gorm:"not null;default:customer" json:"role"` // customer | driver | admin

	// Relations — preload only when needed
	Orders  []Order      `json:"-"`
	Blogs   []Blog       `gorm:"foreignKey:AuthorID" json:"-"`
	Setting *UserSetting `gorm:"foreignKey:UserID" json:"-"`
}

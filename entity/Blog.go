package entity

import (
	"gorm.io/gorm"
)

type Blog struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Content     string `json:"content"`
	IsPublished bool   `gorm:"default:false" json:"isPublished"`

	AuthorID uint `json:"authorId"`
	Author   User `gorm:"foreignKey:AuthorID" json:"-"`
}
